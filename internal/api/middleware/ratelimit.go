package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/kitab/kitab-backend/internal/api/handler"
	"github.com/kitab/kitab-backend/internal/domain"
)

// Allower is satisfied by *ratelimiter.Limiter.
type Allower interface {
	Allow() bool
}

// RateLimit rejects requests with 429 once the limiter runs out of tokens.
// Requests whose path is in exempt bypass the limiter and consume no token.
// onLimited may be nil.
func RateLimit(l Allower, logger *zap.Logger, onLimited func(), exempt ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok || l.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			if onLimited != nil {
				onLimited()
			}
			logger.Warn("request rate limited",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("correlation_id", GetCorrelationID(r.Context())),
			)

			w.Header().Set("Retry-After", "1")
			if err := handler.WriteError(w, http.StatusTooManyRequests, domain.ErrRateLimited.Error()); err != nil {
				logger.Debug("write rate limit response", zap.Error(err))
			}
		})
	}
}
