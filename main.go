package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/kanbanx/cmd"
	"github.com/thenoetrevino/kanbanx/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands already reported their own errors
		var exitErr *cli.ExitCodeError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
