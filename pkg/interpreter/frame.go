package interpreter

import (
	"fmt"

	"worldlang/pkg/parser/codegen"
)

// Frame is an entry on the call stack: *IfBlock, *ForBlock or *FunctionBlock
type Frame interface {
	fmt.Stringer
	isFrame()
}

// IfBlock is pushed by if and popped by its end_block
type IfBlock struct{}

// ForBlock holds the state of a running for loop
type ForBlock struct {
	Var     string  // loop variable name
	Current float64 // value bound to Var on this iteration
	End     float64 // inclusive bound
	Step    float64 // increment; negative counts down
	Entry   int     // index of the loop body's start_block
	started bool    // false until the body has been entered once
}

// FunctionBlock remembers where a declared function returns to
type FunctionBlock struct {
	Name       string
	ReturnCode []codegen.CodeUnit // unit sequence of the caller
	ReturnPC   int                // index of the call unit in ReturnCode
	ReturnBase int                // operand depth the caller's statements drain to
}

func (*IfBlock) isFrame()       {}
func (*ForBlock) isFrame()      {}
func (*FunctionBlock) isFrame() {}

func (*IfBlock) String() string {
	return "if"
}

func (f *ForBlock) String() string {
	return fmt.Sprintf("for %s=%g..%g step %g", f.Var, f.Current, f.End, f.Step)
}

func (f *FunctionBlock) String() string {
	return "function " + f.Name
}

// inRange reports whether Current still lies within the loop bounds
func (f *ForBlock) inRange() bool {
	if f.Step < 0 {
		return f.Current >= f.End
	}
	return f.Current <= f.End
}
