package interpreter

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindUint
	KindDouble
	KindString
	KindCallable
	KindIdentifier
	KindEndargs
)

var valueKindNames = [...]string{
	KindUnknown:    "unknown",
	KindUint:       "unsigned integer",
	KindDouble:     "double",
	KindString:     "string",
	KindCallable:   "callable",
	KindIdentifier: "identifier",
	KindEndargs:    "endargs",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is a dynamically-typed value: one of Uint, Double, String, *Callable
// or Identifier. The endargs sentinel is also a Value but cannot be built
// outside this package.
type Value interface {
	Kind() ValueKind
	String() string
	isValue()
}

// Uint is an unsigned integer, used by hosts for enumeration constants
type Uint uint64

// Double is the type of every numeric literal
type Double float64

// String holds string literal contents
type String string

// Identifier is a variable name not yet looked up in the environment
type Identifier string

// NativeFunc is the signature of every callable, native or declared.
// It receives the interpreter and consumes its arguments with PopArgs.
type NativeFunc func(*Interpreter)

// Callable is a function bound in the environment. It is shared by pointer.
type Callable struct {
	Name string
	Fn   NativeFunc
}

// endargs marks the end of an argument run on the operand stack
type endargs struct{}

func (Uint) Kind() ValueKind       { return KindUint }
func (Double) Kind() ValueKind     { return KindDouble }
func (String) Kind() ValueKind     { return KindString }
func (*Callable) Kind() ValueKind  { return KindCallable }
func (Identifier) Kind() ValueKind { return KindIdentifier }
func (endargs) Kind() ValueKind    { return KindEndargs }

func (Uint) isValue()       {}
func (Double) isValue()     {}
func (String) isValue()     {}
func (*Callable) isValue()  {}
func (Identifier) isValue() {}
func (endargs) isValue()    {}

func (v Uint) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// String renders the shortest representation that reads back exactly
func (v Double) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v String) String() string {
	return string(v)
}

func (c *Callable) String() string {
	if c == nil {
		return "<function>"
	}
	return "<function " + c.Name + ">"
}

func (v Identifier) String() string {
	return string(v)
}

func (endargs) String() string {
	return "<endargs>"
}

// kindOf returns the kind of the Value type T
func kindOf[T Value]() ValueKind {
	var zero T
	return zero.Kind()
}

// parseNumber parses a number literal's text
func parseNumber(text string) (Double, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return Double(f), nil
}
