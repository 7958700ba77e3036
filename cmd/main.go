package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tebeka/atexit"

	"worldlang/internal/host"
	"worldlang/internal/logger"
	"worldlang/pkg/color"
)

// Main entry point for the worldlang interpreter.
func main() {
	options := host.Host{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode (dispatch trace)")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.Dump, "d", false, "Print the lowered code units")
	flag.BoolVar(&options.Interactive, "i", false, "Interactive REPL")
	flag.StringVar(&options.ConfigFile, "config", "", "Host configuration (YAML)")
	flag.IntVar(&options.MaxSteps, "steps", 0, "Maximum steps per run (0 = config or unlimited)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] [file]\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) > 0 {
		options.SourceFile = args[0]
	} else if options.ConfigFile == "" && !options.Interactive {
		log.Error("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
		atexit.Exit(2)
	}

	if err := options.Run(); err != nil {
		log.Error("Run failed", "error", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
