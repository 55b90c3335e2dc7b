package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/CodexForgeBR/examples-check/internal/logging"
)

// WaitUntil blocks until the target time, logging a countdown.
// Returns immediately when target is in the past and ctx.Err() when
// cancelled. Countdown interval adapts to the remaining time:
// >1h every 60s, >10min every 30s, >1min every 10s, otherwise every 1s.
func WaitUntil(ctx context.Context, target time.Time) error {
	remaining := time.Until(target)
	if remaining <= 0 {
		return nil
	}

	logging.Info(fmt.Sprintf("Waiting until %s (%s remaining)",
		target.Format("2006-01-02 15:04:05"), remaining.Round(time.Second)))

	for {
		remaining = time.Until(target)
		if remaining <= 0 {
			return nil
		}

		interval := countdownInterval(remaining)
		if interval > remaining {
			interval = remaining
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
			remaining = time.Until(target)
			if remaining <= 0 {
				return nil
			}
			logging.Info(fmt.Sprintf("  ... %s remaining", remaining.Round(time.Second)))
		}
	}
}

func countdownInterval(remaining time.Duration) time.Duration {
	switch {
	case remaining > time.Hour:
		return 60 * time.Second
	case remaining > 10*time.Minute:
		return 30 * time.Second
	case remaining > time.Minute:
		return 10 * time.Second
	default:
		return 1 * time.Second
	}
}
