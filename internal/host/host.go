package host

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"worldlang/internal/config"
	"worldlang/internal/logger"
	"worldlang/pkg/color"
	"worldlang/pkg/interpreter"
	"worldlang/pkg/parser"
	"worldlang/pkg/parser/codegen"
	"worldlang/pkg/world"
)

type Host struct {
	Help        bool   // Show help message
	Verbose     bool   // Enable verbose output and the dispatch trace
	NoColor     bool   // Disable colored output
	Dump        bool   // Print the lowered code units before running
	Interactive bool   // Start a REPL instead of running a file
	ConfigFile  string // Path to the YAML host configuration
	MaxSteps    int    // Step limit per run, overriding the config (0 = use config)
	SourceFile  string // Path to the program

	Out    io.Writer // program output (default stdout)
	ErrOut io.Writer // diagnostics (default stderr)
}

// Run builds the interpreter described by the options and runs the program
// or the REPL.
func (h *Host) Run() error {
	h.defaults()

	cfg := &config.Config{}
	if h.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(h.ConfigFile); err != nil {
			return err
		}
		log.Info("Loaded config", "file", h.ConfigFile, "constants", len(cfg.Constants))
	}

	it, err := h.newInterpreter(cfg)
	if err != nil {
		return err
	}

	if h.Interactive {
		in := newTerminal()
		defer in.Close()
		return h.REPL(it, in)
	}

	source := h.SourceFile
	if source == "" {
		source = cfg.Script
	}
	if source == "" {
		return ErrNoProgram
	}

	return h.RunFile(it, source)
}

func (h *Host) defaults() {
	if h.Out == nil {
		h.Out = os.Stdout
	}
	if h.ErrOut == nil {
		h.ErrOut = os.Stderr
	}
}

// newInterpreter builds an interpreter with the world functions and the
// configured constants installed.
func (h *Host) newInterpreter(cfg *config.Config) (*interpreter.Interpreter, error) {
	grid := world.NewGrid()
	if cfg.World != "" {
		if err := grid.LoadGrid(cfg.World); err != nil {
			return nil, fmt.Errorf("preload world: %w", err)
		}
		width, height := grid.Size()
		log.Info("Loaded world", "file", cfg.World, "width", width, "height", height)
	}

	steps := cfg.MaxSteps
	if h.MaxSteps > 0 {
		steps = h.MaxSteps
	}

	return interpreter.NewInterpreter(
		interpreter.WithWriter(h.Out),
		interpreter.WithLogger(logger.For("interpreter")),
		interpreter.WithMaxSteps(steps),
		world.WithWorld(grid),
		interpreter.WithConstants(cfg.Constants),
	), nil
}

// RunFile compiles and runs the program at path
func (h *Host) RunFile(it *interpreter.Interpreter, path string) error {
	log.Info("Processing file", "file", path)

	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}

	code, err := codegen.Compile(string(input))
	if err != nil {
		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprintln(h.ErrOut, color.BrightRedText("=== Syntax Error ==="))
			fmt.Fprintln(h.ErrOut, syntaxErr.Pretty())
		}
		return fmt.Errorf("parsing failed: %w", err)
	}

	if h.Dump {
		h.dump(code)
		fmt.Fprintln(h.Out)
		fmt.Fprintln(h.Out, color.GreenText("=== Program Output ==="))
	}

	if !it.Execute(code) {
		fmt.Fprintln(h.ErrOut, color.BrightRedText("=== Runtime Error ==="))
		fmt.Fprintln(h.ErrOut, it.ErrorMessage())
		return fmt.Errorf("run failed: %w", it.Err())
	}

	return nil
}

var ErrNoProgram = errors.New("no program given: pass a file or set script in the config")
