package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 2 // Bad input or runtime error
)

func main() {
	// SIGINT or SIGTERM cancels the context, which stops any running aggregator
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(ExitError)
	}
}
