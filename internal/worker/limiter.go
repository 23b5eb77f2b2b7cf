package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles how fast decisions are handed to downstream intake.
// A nil *Limiter never blocks, so callers can pass one through
// unconditionally.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing reportsPerSecond sustained
// submissions with the given burst. A non-positive rate disables
// throttling entirely (returns nil).
func NewLimiter(reportsPerSecond float64, burst int) *Limiter {
	if reportsPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(reportsPerSecond), burst)}
}

// Wait blocks until the next submission is allowed
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}

// Allow reports whether a submission may proceed without waiting
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.limiter.Allow()
}
