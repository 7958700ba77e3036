package host

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"
	"github.com/tebeka/atexit"

	"worldlang/pkg/color"
	"worldlang/pkg/interpreter"
	"worldlang/pkg/lexer"
)

const (
	prompt         = "> "
	continuePrompt = ". "
	historyFile    = ".worldlang_history"
)

// LineReader is the line editor the REPL reads from
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// terminal is a liner session that saves its history when closed
type terminal struct {
	*liner.State
	history string
	once    sync.Once
}

func newTerminal() *terminal {
	t := &terminal{State: liner.NewLiner()}
	t.SetCtrlCAborts(true)

	if home, err := os.UserHomeDir(); err == nil {
		t.history = filepath.Join(home, historyFile)
		if f, err := os.Open(t.history); err == nil {
			_, _ = t.ReadHistory(f)
			_ = f.Close()
		}
	}

	// the terminal must leave raw mode even when the process exits early
	atexit.Register(func() { _ = t.Close() })
	return t
}

func (t *terminal) Close() error {
	var err error
	t.once.Do(func() {
		if t.history != "" {
			if f, ferr := os.Create(t.history); ferr == nil {
				_, _ = t.WriteHistory(f)
				_ = f.Close()
			}
		}
		err = t.State.Close()
	})
	return err
}

// REPL reads statements from in and runs each complete chunk on it. A chunk
// is complete once its braces balance. Variables and functions persist
// between chunks.
func (h *Host) REPL(it *interpreter.Interpreter, in LineReader) error {
	h.defaults()
	fmt.Fprintln(h.Out, color.BoldText("worldlang")+color.GrayText(" (:help for commands, Ctrl-D to exit)"))

	var chunk strings.Builder
	for {
		p := prompt
		if chunk.Len() > 0 {
			p = continuePrompt
		}

		line, err := in.Prompt(p)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(h.Out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			chunk.Reset()
			continue
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		if chunk.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			in.AppendHistory(line)
			if quit := h.command(it, strings.TrimSpace(line)); quit {
				return nil
			}
			continue
		}

		chunk.WriteString(line)
		chunk.WriteByte('\n')
		if lexer.BlockDepth(chunk.String()) > 0 {
			continue
		}

		src := chunk.String()
		chunk.Reset()
		if strings.TrimSpace(src) == "" {
			continue
		}

		in.AppendHistory(strings.TrimSuffix(src, "\n"))
		if !it.Run(src) {
			log.Debug("REPL chunk failed", "error", it.ErrorMessage())
			fmt.Fprintln(h.ErrOut, color.RedText(it.ErrorMessage()))
		}
	}
}

// command handles a REPL command line. It reports whether the REPL should exit.
func (h *Host) command(it *interpreter.Interpreter, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true

	case ":vars":
		vars := it.Variables()
		names := make([]string, 0, len(vars))
		for name, v := range vars {
			if v.Kind() != interpreter.KindCallable {
				names = append(names, name)
			}
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(h.Out, "%s = %s %s\n", color.CyanText(name), vars[name], color.GrayText("("+vars[name].Kind().String()+")"))
		}

	case ":load":
		if len(fields) != 2 {
			fmt.Fprintln(h.ErrOut, color.RedText("usage: :load <file>"))
			break
		}
		if !it.RunFile(fields[1]) {
			fmt.Fprintln(h.ErrOut, color.RedText(it.ErrorMessage()))
		}

	case ":help":
		fmt.Fprintln(h.Out, ":vars         list variables")
		fmt.Fprintln(h.Out, ":load <file>  run a program file in this session")
		fmt.Fprintln(h.Out, ":quit         leave the REPL")

	default:
		fmt.Fprintln(h.ErrOut, color.RedText("unknown command "+fields[0]))
	}
	return false
}
