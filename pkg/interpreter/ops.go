package interpreter

import (
	"fmt"
	"math"
	"strings"

	"worldlang/pkg/parser/codegen"
)

var opNames = map[codegen.Operation]string{
	codegen.OpAdd: "plus",
	codegen.OpSub: "minus",
	codegen.OpMul: "times",
	codegen.OpDiv: "divide",
	codegen.OpEq:  "equal",
	codegen.OpNeq: "not equal",
	codegen.OpLt:  "less",
	codegen.OpLe:  "less or equal",
	codegen.OpGt:  "greater",
	codegen.OpGe:  "greater or equal",
}

// evalBinary applies op to a and b. Numbers of either kind produce a Double;
// comparisons produce 1 or 0.
func (i *Interpreter) evalBinary(op codegen.Operation, a, b Value) (Value, bool) {
	x, xNum := i.Number(a)
	y, yNum := i.Number(b)
	if i.Failed() {
		return nil, false
	}

	if xNum && yNum {
		switch op {
		case codegen.OpAdd:
			return Double(x + y), true
		case codegen.OpSub:
			return Double(x - y), true
		case codegen.OpMul:
			return Double(x * y), true
		case codegen.OpDiv:
			return Double(x / y), true
		case codegen.OpEq:
			return truth(x == y), true
		case codegen.OpNeq:
			return truth(x != y), true
		case codegen.OpLt:
			return truth(x < y), true
		case codegen.OpLe:
			return truth(x <= y), true
		case codegen.OpGt:
			return truth(x > y), true
		case codegen.OpGe:
			return truth(x >= y), true
		}
	}

	s, sStr := i.text(a)
	t, tStr := i.text(b)

	switch {
	case sStr && tStr:
		switch op {
		case codegen.OpAdd:
			return String(s + t), true
		case codegen.OpEq:
			return truth(s == t), true
		case codegen.OpNeq:
			return truth(s != t), true
		case codegen.OpLt:
			return truth(s < t), true
		case codegen.OpLe:
			return truth(s <= t), true
		case codegen.OpGt:
			return truth(s > t), true
		case codegen.OpGe:
			return truth(s >= t), true
		}

	case sStr && yNum && op == codegen.OpMul:
		r, ok := repeat(s, y)
		if !ok {
			i.Error("String too long!")
			return nil, false
		}
		return String(r), true
	}

	i.Error(fmt.Sprintf("Runtime type error (%s)", opNames[op]))
	return nil, false
}

// text returns v as a Go string when it holds a String
func (i *Interpreter) text(v Value) (string, bool) {
	v, ok := i.Resolve(v)
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return string(s), ok
}

// MaxStringLength bounds the strings produced by repetition, in bytes
const MaxStringLength = 1 << 24

// repeat concatenates s once for every whole number below count. It fails
// when the result would exceed MaxStringLength.
func repeat(s string, count float64) (string, bool) {
	if !(count > 0) || s == "" {
		return "", true
	}
	n := math.Ceil(count)
	if n > float64(MaxStringLength/len(s)) {
		return "", false
	}
	return strings.Repeat(s, int(n)), true
}

func truth(b bool) Double {
	if b {
		return 1
	}
	return 0
}
