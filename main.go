package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/maastricht-university/presentation-eval/orchestrator"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitError        = 1 // usage, configuration or runtime error
	ExitInvalidInput = 2 // the raw results could not be parsed or the recording is missing
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, orchestrator.ErrInvalidInput) {
			os.Exit(ExitInvalidInput)
		}
		os.Exit(ExitError)
	}
}
