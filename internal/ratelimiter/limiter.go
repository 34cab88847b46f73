package ratelimiter

import "golang.org/x/time/rate"

// Limiter is a single token bucket shared by every request the server
// handles. It is safe for concurrent use.
type Limiter struct {
	l *rate.Limiter
}

// New creates a Limiter granting ratePerSec tokens per second. A burst of
// zero or less means burst == rate, so no capacity is saved up beyond one
// second's worth of tokens.
func New(ratePerSec, burst int) *Limiter {
	if burst <= 0 {
		burst = ratePerSec
	}
	return &Limiter{l: rate.NewLimiter(rate.Limit(ratePerSec), burst)}
}

// Allow reports whether a token is available right now and consumes it if so.
func (l *Limiter) Allow() bool {
	return l.l.Allow()
}
