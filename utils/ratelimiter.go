package utils

import (
	"context"
	"time"
)

// RateLimiter pauses for a fixed delay after every outgoing call, keeping a
// sequential caller under a provider's requests-per-minute ceiling
type RateLimiter struct {
	delay time.Duration
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRateLimiter creates a RateLimiter with the given fixed delay.
// A zero or negative delay disables pausing.
func NewRateLimiter(delay time.Duration) *RateLimiter {
	return &RateLimiter{delay: delay, sleep: sleepContext}
}

// Delay returns the configured pause
func (r *RateLimiter) Delay() time.Duration {
	return r.delay
}

// Wait blocks for the configured delay or until ctx is done
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r.delay <= 0 {
		return nil
	}
	return r.sleep(ctx, r.delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
