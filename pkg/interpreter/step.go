package interpreter

import (
	"errors"
	"fmt"
	"strconv"

	"worldlang/pkg/parser/codegen"
)

// step dispatches a single code unit. Control transfers go through jumpTo.
func (i *Interpreter) step(unit codegen.CodeUnit) {
	i.logger.Debug("Dispatch", "pc", i.pc, "unit", unit.String(), "stack", i.stack.Size(), "frames", i.calls.Size())

	switch unit.Kind {
	case codegen.KindNumber:
		n, err := parseNumber(unit.Text)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				i.Error("Number too big!")
			} else {
				i.Error("Failed to convert number!")
			}
			return
		}
		i.PushStack(n)

	case codegen.KindString:
		i.PushStack(String(unit.Text))

	case codegen.KindIdentifier:
		i.PushStack(Identifier(unit.Text))

	case codegen.KindFunctionCall:
		i.call(unit.Text)

	case codegen.KindFunctionDecl:
		i.declare(unit.Text)

	case codegen.KindOperation:
		i.operation(unit.Text)

	default:
		i.Error(fmt.Sprintf("Unknown code unit %s", unit))
	}
}

// call invokes the callable bound to name
func (i *Interpreter) call(name string) {
	v, exists := i.env[name]
	if !exists {
		i.Error(fmt.Sprintf("Function %s does not exist!", name))
		return
	}

	fn, ok := v.(*Callable)
	if !ok || fn.Fn == nil {
		i.Error(fmt.Sprintf("%s is not a callable object!", name))
		return
	}

	fn.Fn(i)
}

// operation dispatches an operation unit
func (i *Interpreter) operation(op codegen.Operation) {
	switch op {
	case codegen.OpEndline:
		// statements leave nothing behind, down to the operands of the caller
		for i.stack.Size() > i.base {
			i.stack.Pop()
		}

	case codegen.OpEndargs:
		i.PushStack(endargs{})

	case codegen.OpStartBlock:
		i.startBlock()

	case codegen.OpEndBlock:
		i.endBlock()

	case codegen.OpAssign:
		i.assign()

	default:
		if !codegen.IsBinaryOp(op) {
			i.Error(fmt.Sprintf("Unknown operation '%s'", op))
			return
		}

		b, okB := i.PopStack()
		a, okA := i.PopStack()
		if !okA || !okB {
			return
		}

		if res, ok := i.evalBinary(op, a, b); ok {
			i.PushStack(res)
		}
	}
}

// assign binds targets to values left to right. Each value is resolved as
// it is bound, so a later value sees an earlier binding.
func (i *Interpreter) assign() {
	values := i.PopArgs()
	targets := i.PopArgs()
	if i.Failed() {
		return
	}

	switch {
	case len(values) > len(targets):
		i.Error("Too many values!")
		return
	case len(values) < len(targets):
		i.Error("Not enough values!")
		return
	}

	for k, target := range targets {
		name, ok := target.(Identifier)
		if !ok {
			i.Error(fmt.Sprintf("Cannot assign to %s", describe(target)))
			return
		}

		v := values[k]
		if id, isID := v.(Identifier); isID {
			bound, exists := i.env[string(id)]
			if !exists {
				i.Error("Variable did not exist!")
				return
			}
			v = bound
		}

		i.env[string(name)] = v
	}
}

// startBlock enters a block. Only a for loop's own start_block does work:
// it advances the loop and leaves it once the bound is passed.
func (i *Interpreter) startBlock() {
	top, ok := i.calls.Peek()
	if !ok {
		return
	}

	loop, isFor := top.(*ForBlock)
	if !isFor || loop.Entry != i.pc {
		return
	}

	if loop.started {
		loop.Current += loop.Step
	} else {
		loop.started = true
	}

	if loop.inRange() {
		i.env[loop.Var] = Double(loop.Current)
		return
	}

	i.calls.Pop()
	if end, ok := i.blockEnd(i.pc, "for"); ok {
		i.jumpTo(end + 1)
	}
}

// endBlock leaves the block on top of the call stack
func (i *Interpreter) endBlock() {
	top, ok := i.calls.Peek()
	if !ok {
		i.Error("Unexpected end of block")
		return
	}

	switch f := top.(type) {
	case *ForBlock:
		i.jumpTo(f.Entry)

	case *IfBlock:
		i.calls.Pop()

	case *FunctionBlock:
		i.calls.Pop()
		i.code = f.ReturnCode
		i.base = f.ReturnBase
		i.jumpTo(f.ReturnPC + 1)
	}
}

// declare binds name to a function whose body is the code block after pc,
// then skips the body.
func (i *Interpreter) declare(name string) {
	args := i.PopArgs()
	if i.Failed() {
		return
	}

	params := make([]string, len(args))
	for k, arg := range args {
		id, ok := arg.(Identifier)
		if !ok {
			i.Error(fmt.Sprintf("Parameter %s of function %s is not an identifier", arg, name))
			return
		}
		params[k] = string(id)
	}

	end, ok := i.blockEnd(i.pc+1, "function "+name)
	if !ok {
		return
	}

	i.RegisterFunction(name, declared(name, params, i.code, i.pc+1))
	i.jumpTo(end + 1)
}

// declared returns the native body of a user function. The body starts at
// entry in code; parameters are plain environment bindings.
func declared(name string, params []string, code []codegen.CodeUnit, entry int) NativeFunc {
	return func(i *Interpreter) {
		args := i.PopArgs()
		if i.Failed() {
			return
		}
		if len(args) != len(params) {
			i.Error(fmt.Sprintf("Function %s expects %d arguments, got %d", name, len(params), len(args)))
			return
		}

		values := make([]Value, len(args))
		for k, arg := range args {
			v, ok := i.Resolve(arg)
			if !ok {
				return
			}
			values[k] = v
		}
		for k, param := range params {
			i.env[param] = values[k]
		}

		i.calls.Push(&FunctionBlock{Name: name, ReturnCode: i.code, ReturnPC: i.pc, ReturnBase: i.base})
		i.code = code
		i.base = i.stack.Size()
		i.jumpTo(entry)
	}
}
