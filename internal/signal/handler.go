// Package signal provides SIGINT/SIGTERM handling for the examples-check CLI.
//
// An interrupt during a validation run should record the run as interrupted
// before the process dies, so CI logs show why the pipeline stopped.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler registers SIGINT and SIGTERM handlers. When a signal
// arrives it runs the onInterrupt callback (if non-nil), then cancels the
// context so in-flight commands and retry delays abort.
//
// The listening goroutine exits when either a signal is received or the
// context is cancelled from elsewhere.
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
		}
	}()
}
