package codegen

import (
	"fmt"
)

// Kind tags a CodeUnit
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindIdentifier
	KindFunctionCall
	KindOperation
	KindFunctionDecl
)

var kindNames = [...]string{
	KindNumber:       "number",
	KindString:       "string",
	KindIdentifier:   "identifier",
	KindFunctionCall: "function",
	KindOperation:    "operation",
	KindFunctionDecl: "declare",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Operation = string

// List of operations carried by KindOperation units
const (
	OpAssign     Operation = "="
	OpAdd        Operation = "+"
	OpSub        Operation = "-"
	OpMul        Operation = "*"
	OpDiv        Operation = "/"
	OpEq         Operation = "=="
	OpNeq        Operation = "!="
	OpLt         Operation = "<"
	OpLe         Operation = "<="
	OpGt         Operation = ">"
	OpGe         Operation = ">="
	OpEndline    Operation = "endline"
	OpEndargs    Operation = "endargs"
	OpStartBlock Operation = "start_block"
	OpEndBlock   Operation = "end_block"
)

// Names of calls that open control blocks rather than declare functions
const (
	FuncIf  = "if"
	FuncFor = "for"
)

// CodeUnit is one atom of the lowered program
type CodeUnit struct {
	Kind Kind
	Text string // literal payload: number text, string contents, identifier, function or operation name
}

// String returns a string representation of the unit
func (u CodeUnit) String() string {
	if u.Kind == KindString {
		return fmt.Sprintf("(%s, %q)", u.Kind, u.Text)
	}
	return fmt.Sprintf("(%s, %s)", u.Kind, u.Text)
}

// IsOp reports whether u is the operation op
func (u CodeUnit) IsOp(op Operation) bool {
	return u.Kind == KindOperation && u.Text == op
}

// Op builds an operation unit
func Op(op Operation) CodeUnit {
	return CodeUnit{Kind: KindOperation, Text: op}
}

// IsBinaryOp reports whether op is one of the binary operator symbols
func IsBinaryOp(op Operation) bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpEq, OpNeq, OpLt, OpLe, OpGt, OpGe:
		return true
	default:
		return false
	}
}

// MatchingEnd returns the index of the end_block closing the start_block at start, or -1
func MatchingEnd(code []CodeUnit, start int) int {
	if start < 0 || start >= len(code) || !code[start].IsOp(OpStartBlock) {
		return -1
	}

	depth := 0
	for i := start; i < len(code); i++ {
		switch {
		case code[i].IsOp(OpStartBlock):
			depth++
		case code[i].IsOp(OpEndBlock):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
