package interpreter

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/charmbracelet/log"

	"worldlang/pkg/parser/codegen"
	"worldlang/pkg/stack"
)

// Interpreter is a stack machine executing lowered code units.
// The environment persists across runs; the operand stack, call stack and
// error slot are reset at the start of each run.
type Interpreter struct {
	code []codegen.CodeUnit // active unit sequence
	pc   int                // index of the unit being dispatched
	next int                // index of the unit dispatched after this one

	env   map[string]Value    // variables and callables
	stack *stack.Stack[Value] // operand stack
	calls *stack.Stack[Frame] // call stack
	base  int                 // operand depth endline drains to

	errorMessage string // first error of the run; empty while healthy
	errorPC      int    // unit that recorded errorMessage

	out    io.Writer   // output writer for print
	logger *log.Logger // dispatch trace

	maxSteps int // maximum steps per run (0 = unlimited)
	steps    int // steps executed in the current run

	running bool
}

type Option func(*Interpreter)

// WithWriter sets the output writer for print
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithMaxSteps stops a run with ErrMaxStepsExceeded after n dispatched units
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// WithLogger sets the logger used for the dispatch trace
func WithLogger(l *log.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

// WithFunction binds a native function. Built-ins of the same name are shadowed.
func WithFunction(name string, fn NativeFunc) Option {
	return func(i *Interpreter) { i.RegisterFunction(name, fn) }
}

// WithConstants binds every entry of vars as a variable
func WithConstants(vars map[string]Value) Option {
	return func(i *Interpreter) {
		for name, v := range vars {
			i.SetVariable(name, v)
		}
	}
}

// NewInterpreter creates an Interpreter with the built-ins installed, then
// applies opts so a host can override any of them.
func NewInterpreter(opts ...Option) *Interpreter {
	it := &Interpreter{
		env:   make(map[string]Value),
		stack: stack.NewStack[Value](),
		calls: stack.NewStack[Frame](),
	}

	it.installBuiltins()
	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}
	if it.logger == nil {
		it.logger = log.Default()
	}

	return it
}

// Run parses, lowers and executes src. It returns false if parsing failed or
// a runtime error occurred; ErrorMessage then describes the first error.
func (i *Interpreter) Run(src string) bool {
	if !i.begin() {
		return false
	}

	code, err := codegen.Compile(src)
	if err != nil {
		i.Error(err.Error())
		return false
	}

	return i.execute(code)
}

// RunFile reads path and runs its contents
func (i *Interpreter) RunFile(path string) bool {
	if !i.begin() {
		return false
	}

	src, err := os.ReadFile(path)
	if err != nil {
		i.Error(fmt.Sprintf("Failed to read %s: %v", path, err))
		return false
	}

	i.logger.Info("Running program", "file", path)
	code, err := codegen.Compile(string(src))
	if err != nil {
		i.Error(err.Error())
		return false
	}

	return i.execute(code)
}

// Execute runs an already lowered unit sequence
func (i *Interpreter) Execute(code []codegen.CodeUnit) bool {
	if !i.begin() {
		return false
	}
	return i.execute(code)
}

// begin resets the per-run state. A run started from inside another run is
// refused and stops the outer run.
func (i *Interpreter) begin() bool {
	if i.running {
		i.Error(ErrReentrantRun.Error())
		return false
	}

	i.errorMessage = ""
	i.stack.Clear()
	i.calls.Clear()
	i.code, i.pc, i.next = nil, 0, 0
	i.base = 0
	i.steps = 0
	return true
}

func (i *Interpreter) execute(code []codegen.CodeUnit) bool {
	i.running = true
	defer func() { i.running = false }()

	i.code = code
	i.pc = 0
	for i.errorMessage == "" && i.pc < len(i.code) {
		if i.maxSteps > 0 && i.steps >= i.maxSteps {
			i.Error(ErrMaxStepsExceeded.Error())
			break
		}

		i.next = i.pc + 1
		i.step(i.code[i.pc])
		i.steps++
		i.pc = i.next
	}

	return i.errorMessage == ""
}

// Error records msg as the run's error unless one is already set
func (i *Interpreter) Error(msg string) {
	if i.errorMessage != "" {
		return
	}
	if msg == "" {
		msg = "unknown error"
	}

	i.errorMessage = msg
	i.errorPC = i.pc
	if i.logger != nil {
		i.logger.Debug("Runtime error", "pc", i.pc, "message", msg)
	}
}

// ErrorMessage returns the first error of the last run, or ""
func (i *Interpreter) ErrorMessage() string {
	return i.errorMessage
}

// Err returns the first error of the last run as a *RuntimeError, or nil
func (i *Interpreter) Err() error {
	if i.errorMessage == "" {
		return nil
	}
	return &RuntimeError{Message: i.errorMessage, PC: i.errorPC}
}

// Failed reports whether the current run has recorded an error
func (i *Interpreter) Failed() bool {
	return i.errorMessage != ""
}

// RegisterFunction binds name to a native callable
func (i *Interpreter) RegisterFunction(name string, fn NativeFunc) {
	i.env[name] = &Callable{Name: name, Fn: fn}
}

// SetVariable binds name to v
func (i *Interpreter) SetVariable(name string, v Value) {
	i.env[name] = v
}

// Lookup returns the value bound to name
func (i *Interpreter) Lookup(name string) (Value, bool) {
	v, ok := i.env[name]
	return v, ok
}

// Variables returns a copy of the environment
func (i *Interpreter) Variables() map[string]Value {
	return maps.Clone(i.env)
}

// PushStack pushes v onto the operand stack
func (i *Interpreter) PushStack(v Value) {
	i.stack.Push(v)
}

// PopStack pops the operand stack. An empty stack records an error.
func (i *Interpreter) PopStack() (Value, bool) {
	v, ok := i.stack.Pop()
	if !ok {
		i.Error("Operand stack underflow")
	}
	return v, ok
}

// StackSize returns the operand stack depth
func (i *Interpreter) StackSize() int {
	return i.stack.Size()
}

// PopArgs pops values down to and including the nearest endargs marker and
// returns them in source order.
func (i *Interpreter) PopArgs() []Value {
	var args []Value
	for {
		v, ok := i.PopStack()
		if !ok {
			return nil
		}
		if _, end := v.(endargs); end {
			break
		}
		args = append(args, v)
	}

	slices.Reverse(args)
	return args
}

// jumpTo makes pc the next unit dispatched
func (i *Interpreter) jumpTo(pc int) {
	i.next = pc
}

// blockEnd returns the end_block matching the start_block at start, recording
// an error when there is none.
func (i *Interpreter) blockEnd(start int, what string) (int, bool) {
	end := codegen.MatchingEnd(i.code, start)
	if end < 0 {
		i.Error(what + " must be followed by a code block")
		return 0, false
	}
	return end, true
}

// RuntimeError is the error recorded by a failed run
type RuntimeError struct {
	Message string
	PC      int
}

func (e *RuntimeError) Error() string {
	return e.Message
}

var (
	ErrMaxStepsExceeded = errors.New("maximum steps exceeded")
	ErrReentrantRun     = errors.New("re-entrant run is not supported")
)
