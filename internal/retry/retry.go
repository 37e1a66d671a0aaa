package retry

import (
	"context"
	"errors"
	"time"
)

// Policy is a bounded exponential-backoff retry policy. Attempts run strictly
// sequentially: attempt, sleep, attempt again, up to MaxAttempts total attempts.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first
	MaxAttempts int
	// InitialDelay is the sleep before the second attempt
	InitialDelay time.Duration
	// Multiplier scales the delay after each failed attempt
	Multiplier float64
	// Retryable reports whether an error is worth another attempt.
	// A nil Retryable retries every error.
	Retryable func(err error) bool
	// OnRetry is called before each backoff sleep
	OnRetry func(attempt int, delay time.Duration, err error)
	// Sleep overrides time.Sleep, for tests
	Sleep func(d time.Duration)
}

// Do runs fn under the policy and returns the error of the last attempt.
// Cancelling ctx between attempts stops the loop; the context error is joined
// onto the last attempt's error.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.InitialDelay
	var err error
	for attempt := 1; ; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt >= attempts {
			return err
		}
		if p.OnRetry != nil {
			p.OnRetry(attempt, delay, err)
		}
		if slept := p.sleep(ctx, delay); slept != nil {
			return errors.Join(err, slept)
		}
		if p.Multiplier > 0 {
			delay = time.Duration(float64(delay) * p.Multiplier)
		}
	}
}

func (p Policy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		p.Sleep(d)
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
