package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/adfkit/adf/internal/cli"
	"github.com/adfkit/adf/pkg/adf"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(adf.ExitPanic)
		}
	}()

	if os.Getenv("ADF_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(adf.ExitCodeForError(err))
	}
}
