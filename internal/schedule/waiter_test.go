package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitUntil_PastTargetReturnsImmediately(t *testing.T) {
	past := time.Now().Add(-1 * time.Hour)

	start := time.Now()
	err := WaitUntil(context.Background(), past)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Less(t, elapsed, 100*time.Millisecond)
}

func TestWaitUntil_ShortWait(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping wait test in short mode")
	}

	target := time.Now().Add(500 * time.Millisecond)

	start := time.Now()
	err := WaitUntil(context.Background(), target)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 450*time.Millisecond)
	assert.Less(t, elapsed, 1*time.Second)
}

func TestWaitUntil_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	target := time.Now().Add(10 * time.Second)

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := WaitUntil(ctx, target)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestCountdownInterval(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		expected  time.Duration
	}{
		{2 * time.Hour, 60 * time.Second},
		{30 * time.Minute, 30 * time.Second},
		{5 * time.Minute, 10 * time.Second},
		{30 * time.Second, 1 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, countdownInterval(tt.remaining), "remaining %s", tt.remaining)
	}
}
