// Package retry implements a bounded fixed-interval retry loop.
//
// Unlike exponential backoff, the delay between attempts is constant: a
// failing validation suite in CI is retried a fixed number of times with the
// same pause each time, and the first success wins.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Default attempt budget and pause between attempts.
const (
	DefaultMaxAttempts  = 3
	DefaultDelaySeconds = 60
)

// Config configures fixed-interval retry behavior.
type Config struct {
	MaxAttempts  int // total attempts including the first (default 3)
	DelaySeconds int // constant pause between attempts (default 60)

	// OnRetry is called after a failed attempt when at least one attempt
	// remains, before the delay starts.
	OnRetry func(remaining int, delaySeconds int)
}

// ExhaustedError is returned when every attempt failed.
type ExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d attempts failed: %v", e.Attempts, e.LastErr)
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastErr
}

// Run executes fn up to cfg.MaxAttempts times, pausing cfg.DelaySeconds
// between failed attempts. It returns nil as soon as fn succeeds, without
// any further attempts or delay. When every attempt fails it returns an
// *ExhaustedError wrapping the last error.
//
// The delay is constant: attempt 1→2 waits exactly as long as attempt 2→3.
// Cancelling ctx during a delay aborts the loop with ctx.Err().
func Run(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.DelaySeconds <= 0 {
		cfg.DelaySeconds = DefaultDelaySeconds
	}

	remaining := cfg.MaxAttempts

	for remaining > 0 {
		err := fn()
		if err == nil {
			return nil
		}

		remaining--
		if remaining == 0 {
			return &ExhaustedError{Attempts: cfg.MaxAttempts, LastErr: err}
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(remaining, cfg.DelaySeconds)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(cfg.DelaySeconds) * time.Second):
		}
	}

	// Unreachable: the loop always returns from inside.
	return nil
}
