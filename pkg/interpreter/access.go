package interpreter

import (
	"fmt"
)

// Has reports whether v holds a T, looking identifiers up in the
// environment. An identifier with no binding records an error.
func Has[T Value](i *Interpreter, v Value) bool {
	if _, ok := v.(T); ok {
		return true
	}

	id, ok := v.(Identifier)
	if !ok {
		return false
	}

	bound, exists := i.env[string(id)]
	if !exists {
		i.Error(fmt.Sprintf("Variable %s does not exist!", id))
		return false
	}

	_, ok = bound.(T)
	return ok
}

// As returns v as a T, looking identifiers up in the environment.
// A mismatch records an error and returns the zero T.
func As[T Value](i *Interpreter, v Value) T {
	var zero T

	if t, ok := v.(T); ok {
		return t
	}

	if id, ok := v.(Identifier); ok {
		bound, exists := i.env[string(id)]
		if !exists {
			i.Error(fmt.Sprintf("Variable %s does not exist!", id))
			return zero
		}
		if t, ok := bound.(T); ok {
			return t
		}
		v = bound
	}

	i.Error(fmt.Sprintf("Runtime type error: expected %s, got %s", kindOf[T](), describe(v)))
	return zero
}

// Var returns the variable name as a T. It panics when name is unbound or
// holds another type, so it suits hosts that installed the binding themselves.
func Var[T Value](i *Interpreter, name string) T {
	v, ok := i.env[name]
	if !ok {
		panic(fmt.Sprintf("variable %q is not defined", name))
	}

	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("variable %q is a %s, not a %s", name, v.Kind(), kindOf[T]()))
	}
	return t
}

// Resolve replaces an identifier with the value it is bound to
func (i *Interpreter) Resolve(v Value) (Value, bool) {
	id, ok := v.(Identifier)
	if !ok {
		return v, true
	}

	bound, exists := i.env[string(id)]
	if !exists {
		i.Error(fmt.Sprintf("Variable %s does not exist!", id))
		return nil, false
	}
	return bound, true
}

// Number returns v as a float64 when it holds a Double or a Uint
func (i *Interpreter) Number(v Value) (float64, bool) {
	v, ok := i.Resolve(v)
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case Double:
		return float64(n), true
	case Uint:
		return float64(n), true
	}
	return 0, false
}

func describe(v Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Kind().String()
}
