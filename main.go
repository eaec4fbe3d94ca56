// Package main is the entry point for the contentcheck CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/eykd/contentcheck/cmd"
)

func main() {
	// Cancel the run context on SIGINT so long corpus scans can be
	// interrupted cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
