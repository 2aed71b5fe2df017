package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

type application interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Err() error
}

type doneNotifier interface {
	Done() <-chan os.Signal
}

// run starts app, blocks until ctx is cancelled or fx requests shutdown, and returns the process exit code.
func run(ctx context.Context, app application, stderr io.Writer) int {
	if err := app.Err(); err != nil {
		fmt.Fprintf(stderr, "failed to build application: %v\n", err)
		return 1
	}

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start application: %v\n", err)
		return 1
	}

	var done <-chan os.Signal
	if n, ok := app.(doneNotifier); ok {
		done = n.Done()
	}
	select {
	case <-ctx.Done():
	case <-done:
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(stderr, "failed to stop application: %v\n", err)
		return 1
	}
	return 0
}
