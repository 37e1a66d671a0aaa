package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jt-helsinki/stripe-connect/internal/retry"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	var attempts int
	var sleeps []time.Duration
	policy := retry.Policy{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		Multiplier:   2,
		Sleep: func(d time.Duration) {
			sleeps = append(sleeps, d)
		},
	}
	err := policy.Do(context.Background(), func() error {
		attempts++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, attempts)
	require.Empty(t, sleeps)
}

func TestDoRetriesWithExponentialBackoff(t *testing.T) {
	boom := errors.New("boom")
	var attempts int
	var sleeps []time.Duration
	policy := retry.Policy{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		Multiplier:   2,
		Sleep: func(d time.Duration) {
			sleeps = append(sleeps, d)
		},
	}
	err := policy.Do(context.Background(), func() error {
		attempts++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 3, attempts)
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeps)
}

func TestDoSucceedsAfterRetry(t *testing.T) {
	boom := errors.New("boom")
	var attempts int
	policy := retry.Policy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
		Sleep:        func(time.Duration) {},
	}
	err := policy.Do(context.Background(), func() error {
		attempts++
		if attempts < 2 {
			return boom
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, attempts)
}

func TestDoStopsOnNonRetryableError(t *testing.T) {
	boom := errors.New("boom")
	var attempts int
	policy := retry.Policy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
		Retryable:    func(error) bool { return false },
		Sleep:        func(time.Duration) {},
	}
	err := policy.Do(context.Background(), func() error {
		attempts++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, attempts)
}

func TestDoReportsRetriesInOrder(t *testing.T) {
	boom := errors.New("boom")
	var observed []int
	var delays []time.Duration
	policy := retry.Policy{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		Multiplier:   2,
		OnRetry: func(attempt int, delay time.Duration, err error) {
			observed = append(observed, attempt)
			delays = append(delays, delay)
		},
		Sleep: func(time.Duration) {},
	}
	err := policy.Do(context.Background(), func() error {
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, []int{1, 2}, observed)
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}

func TestDoStopsWhenContextCancelled(t *testing.T) {
	boom := errors.New("boom")
	ctx, cancel := context.WithCancel(context.Background())
	var attempts int
	policy := retry.Policy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
		Sleep: func(time.Duration) {
			cancel()
		},
	}
	err := policy.Do(ctx, func() error {
		attempts++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, attempts)
}
