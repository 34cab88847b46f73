package domain

import "errors"

// Sentinel errors used throughout the application.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrRateLimited   = errors.New("rate limit exceeded")
)
