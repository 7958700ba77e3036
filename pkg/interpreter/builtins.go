package interpreter

import (
	"fmt"
	"strings"

	"worldlang/pkg/parser/codegen"
)

func (i *Interpreter) installBuiltins() {
	i.RegisterFunction(codegen.FuncIf, builtinIf)
	i.RegisterFunction(codegen.FuncFor, builtinFor)
	i.RegisterFunction("print", builtinPrint)
}

// builtinIf enters the following block, or skips to its end_block when the
// condition is zero so the end_block still pops the frame.
func builtinIf(i *Interpreter) {
	args := i.PopArgs()
	if i.Failed() {
		return
	}
	if len(args) != 1 {
		i.Error("Wrong number of arguments!")
		return
	}

	cond, ok := i.Number(args[0])
	if !ok {
		i.Error("Runtime type error (if)")
		return
	}

	end, ok := i.blockEnd(i.pc+1, "if")
	if !ok {
		return
	}

	i.calls.Push(&IfBlock{})
	if cond == 0 {
		i.jumpTo(end)
	}
}

// builtinFor runs the following block for var = start .. end inclusive,
// counting by step (default 1).
func builtinFor(i *Interpreter) {
	args := i.PopArgs()
	if i.Failed() {
		return
	}
	if len(args) < 3 || len(args) > 4 {
		i.Error("Wrong number of arguments!")
		return
	}

	name, ok := args[0].(Identifier)
	if !ok {
		i.Error("for needs a variable name as its first argument")
		return
	}

	bounds := []float64{0, 0, 1}
	for k, arg := range args[1:] {
		n, ok := i.Number(arg)
		if !ok {
			i.Error("Runtime type error (for)")
			return
		}
		bounds[k] = n
	}

	end, ok := i.blockEnd(i.pc+1, "for")
	if !ok {
		return
	}

	loop := &ForBlock{
		Var:     string(name),
		Current: bounds[0],
		End:     bounds[1],
		Step:    bounds[2],
		Entry:   i.pc + 1,
	}
	if !loop.inRange() {
		i.jumpTo(end + 1)
		return
	}

	i.calls.Push(loop)
}

// builtinPrint writes its arguments with no separator and a newline
func builtinPrint(i *Interpreter) {
	args := i.PopArgs()
	if i.Failed() {
		return
	}

	var sb strings.Builder
	for _, arg := range args {
		v, ok := i.Resolve(arg)
		if !ok {
			return
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte('\n')

	fmt.Fprint(i.out, sb.String())
}
