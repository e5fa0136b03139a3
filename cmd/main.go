package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	tlox "go.tlox.dev/pkg"
)

// Exit codes follow the sysexits.h convention: 64 for a usage error, 65 for a
// scan/parse error, 66 when the script file itself cannot be read, 70 for a
// runtime error.
const (
	exitUsage   = 64
	exitData    = 65
	exitNoInput = 66
	exitSoftwr  = 70
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := tlox.LoadConfig(".loxrc.yaml")
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return exitSoftwr
	}

	natives := cfg.FilterPrelude(tlox.DefaultPrelude())

	switch len(os.Args) {
	case 1:
		return runREPL(cfg, natives, logger)
	case 2:
		return runFile(os.Args[1], natives, logger)
	default:
		fmt.Fprintln(os.Stderr, "usage: tlox [script]")
		return exitUsage
	}
}

func runFile(path string, natives []*tlox.NativeFunction, logger *slog.Logger) int {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("could not read script", "path", path, "error", err)
		return exitNoInput
	}

	interp := tlox.NewInterpreter(tlox.NewWriterSink(os.Stdout), natives)
	if err := interp.Run(string(data)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}

	return 0
}

// runREPL reads one line at a time, feeding each to the same Interpreter so
// top-level bindings accumulate across lines. A blank line or EOF ends the
// session cleanly; a per-line error is reported and the loop continues, rather
// than aborting the whole session.
func runREPL(cfg tlox.Config, natives []*tlox.NativeFunction, logger *slog.Logger) int {
	logger.Info("starting repl", "prompt", cfg.Prompt)

	interp := tlox.NewInterpreter(tlox.NewWriterSink(os.Stdout), natives)
	input := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(cfg.Prompt)

		if !input.Scan() {
			return 0
		}

		line := input.Text()
		if line == "" {
			return 0
		}

		if err := interp.Run(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func exitCodeFor(err error) int {
	switch err.(type) {
	case tlox.ScanningError, tlox.ParsingError:
		return exitData
	default:
		return exitSoftwr
	}
}
