package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kitab/kitab-backend/internal/api/handler"
	apimw "github.com/kitab/kitab-backend/internal/api/middleware"
	"github.com/kitab/kitab-backend/internal/config"
	"github.com/kitab/kitab-backend/internal/metrics"
	"github.com/kitab/kitab-backend/internal/ratelimiter"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	cfg *config.Config,
	reg prometheus.Gatherer,
	m *metrics.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	onRequest, onRateLimited := m.HTTPHooks()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)                        // recover panics, return 500
	r.Use(chimw.RealIP)                           // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(cfg.MaxRequestBytes)) // cap request body
	r.Use(apimw.CorrelationID)                    // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.Instrument(onRequest))

	// Liveness and identity routes stay outside the limiter.
	system := handler.NewSystemHandler()
	if cfg.RateLimit > 0 {
		limiter := ratelimiter.New(cfg.RateLimit, cfg.RateLimitBurst)
		r.Use(apimw.RateLimit(limiter, logger, onRateLimited, system.Paths()...))
	}

	r.NotFound(handler.NotFound)

	// --- routes ---
	system.Register(r)

	// Raw Prometheus scrape endpoint
	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	return r
}
