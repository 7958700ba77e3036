package world

import (
	"fmt"

	"worldlang/pkg/interpreter"
)

// Register installs the world functions into it:
//
//	loadWorld(path)  loads the grid stored at path
//	getWorldSize()   pushes the width and then the height
func Register(it *interpreter.Interpreter, w World) {
	it.RegisterFunction("loadWorld", loadWorld(w))
	it.RegisterFunction("getWorldSize", getWorldSize(w))
}

// WithWorld registers the world functions while the interpreter is built
func WithWorld(w World) interpreter.Option {
	return func(it *interpreter.Interpreter) { Register(it, w) }
}

func loadWorld(w World) interpreter.NativeFunc {
	return func(it *interpreter.Interpreter) {
		args := it.PopArgs()
		if it.Failed() {
			return
		}
		if len(args) != 1 {
			it.Error("Wrong number of arguments!")
			return
		}

		path := interpreter.As[interpreter.String](it, args[0])
		if it.Failed() {
			return
		}

		if err := w.LoadGrid(string(path)); err != nil {
			it.Error(fmt.Sprintf("Failed to load world %s: %v", path, err))
		}
	}
}

func getWorldSize(w World) interpreter.NativeFunc {
	return func(it *interpreter.Interpreter) {
		args := it.PopArgs()
		if it.Failed() {
			return
		}
		if len(args) != 0 {
			it.Error("Wrong number of arguments!")
			return
		}

		width, height := w.Size()
		it.PushStack(interpreter.Double(width))
		it.PushStack(interpreter.Double(height))
	}
}
