package wordpress

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests to a fixed rate. A nil *RateLimiter never
// blocks, so throttling is disabled by leaving it unset.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter allowing rps requests per second.
// Returns nil when rps is not positive.
func NewRateLimiter(rps float64) *RateLimiter {
	if rps <= 0 {
		return nil
	}
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Wait blocks until a request may be made or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.bucket.Wait(ctx)
}
