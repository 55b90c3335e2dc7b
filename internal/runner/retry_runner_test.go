package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/examples-check/internal/retry"
)

// mockRunner is a test double for Runner with scripted results.
type mockRunner struct {
	calls   int
	results []error
}

func (m *mockRunner) Run(ctx context.Context) error {
	idx := m.calls
	m.calls++
	if idx < len(m.results) {
		return m.results[idx]
	}
	return nil
}

// Compile-time interface checks.
var (
	_ Runner = (*RetryRunner)(nil)
	_ Runner = (*ExecRunner)(nil)
)

func TestRetryRunner_DelegatesOnceOnSuccess(t *testing.T) {
	inner := &mockRunner{results: []error{nil}}
	r := &RetryRunner{
		Inner:    inner,
		RetryCfg: retry.Config{MaxAttempts: 3, DelaySeconds: 1},
	}

	err := r.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestRetryRunner_RetriesUntilSuccess(t *testing.T) {
	inner := &mockRunner{
		results: []error{
			errors.New("fail1"),
			errors.New("fail2"),
			nil, // third attempt passes
		},
	}
	r := &RetryRunner{
		Inner:    inner,
		RetryCfg: retry.Config{MaxAttempts: 3, DelaySeconds: 1},
	}

	// Two 1s waits before the third attempt; allow 5s.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, inner.calls)
}

func TestRetryRunner_ExhaustsAttempts(t *testing.T) {
	inner := &mockRunner{
		results: []error{
			errors.New("fail"),
			errors.New("fail"),
			errors.New("fail"),
		},
	}
	r := &RetryRunner{
		Inner:    inner,
		RetryCfg: retry.Config{MaxAttempts: 3, DelaySeconds: 1},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := r.Run(ctx)

	require.Error(t, err)
	assert.Equal(t, 3, inner.calls, "exactly MaxAttempts executions")

	var exhausted *retry.ExhaustedError
	assert.ErrorAs(t, err, &exhausted)
}

func TestRetryRunner_ContextCancellation(t *testing.T) {
	inner := &mockRunner{
		results: []error{
			errors.New("fail"),
			errors.New("fail"),
		},
	}
	r := &RetryRunner{
		Inner:    inner,
		RetryCfg: retry.Config{MaxAttempts: 3, DelaySeconds: 60},
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := r.Run(ctx)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, 2*time.Second, "should abort the delay promptly")
}
