package newsapi

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter is a token bucket shared by every query of the process.
// A nil *RateLimiter never blocks.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter returns a limiter allowing requestsPerSecond with the given burst.
// It returns nil when requestsPerSecond is not positive.
//
//	limiter := NewRateLimiter(1, 5) // 1 req/s with a burst of 5
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until a token is available or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}
