package runner

import (
	"context"

	"github.com/CodexForgeBR/examples-check/internal/retry"
)

// RetryRunner wraps any Runner with fixed-interval retry.
// This is the validation gate: the inner command is attempted up to
// RetryCfg.MaxAttempts times with a constant pause between failures.
type RetryRunner struct {
	Inner    Runner
	RetryCfg retry.Config
}

// Run delegates to the inner runner, retrying on failure via retry.Run.
func (r *RetryRunner) Run(ctx context.Context) error {
	return retry.Run(ctx, r.RetryCfg, func() error {
		return r.Inner.Run(ctx)
	})
}
