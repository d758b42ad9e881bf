package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySingleAttempt(t *testing.T) {
	r := &RetryConfig{MaxAttempts: 1, BaseDelay: time.Millisecond, Logger: NewDiscardLogger()}

	calls := 0
	boom := errors.New("boom")
	err := r.Do(context.Background(), "fetch", func(context.Context) error {
		calls++
		return boom
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRetryZeroAttemptsStillRunsOnce(t *testing.T) {
	r := &RetryConfig{MaxAttempts: 0, Logger: NewDiscardLogger()}

	calls := 0
	err := r.Do(context.Background(), "fetch", func(context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryEventuallySucceeds(t *testing.T) {
	r := &RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, Logger: NewDiscardLogger()}

	calls := 0
	err := r.Do(context.Background(), "fetch", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	r := &RetryConfig{MaxAttempts: 5, BaseDelay: time.Hour, Logger: NewDiscardLogger()}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := r.Do(ctx, "fetch", func(context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRandomUserAgentFromPool(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Contains(t, UserAgents, RandomUserAgent())
	}
}
