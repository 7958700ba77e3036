package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

const prefix = "WORLDLANG"

// Init initializes the default logger. Debug enables the interpreter's
// dispatch trace.
func Init(debug, noColor bool) {
	log.SetDefault(New(os.Stderr, debug, noColor))
}

// New returns a logger writing to w with the worldlang prefix and level
func New(w io.Writer, debug, noColor bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: false, // the REPL prompt already paces output
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
	})

	l.SetLevel(log.WarnLevel)
	if debug {
		l.SetLevel(log.DebugLevel)
	}

	l.SetColorProfile(termenv.ANSI256)
	if noColor {
		l.SetColorProfile(termenv.Ascii)
	}
	return l
}

// For returns the default logger tagged with a component name
func For(component string) *log.Logger {
	return log.Default().WithPrefix(prefix + "/" + component)
}
