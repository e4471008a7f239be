// File: cmd/btnav/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/openrover/btnav/cmd"
)

func main() {
	// Graceful shutdown on SIGINT/SIGTERM; an in-flight goal surfaces as a
	// cancelled context, not a hard exit.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
