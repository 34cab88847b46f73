package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RateLimitedTotal prometheus.Counter
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time from request receipt to handler return.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		RateLimitedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "http_requests_rate_limited_total",
			Help: "Total number of requests rejected with 429.",
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.RateLimitedTotal,
	)

	return m
}

// HTTPHooks returns the callbacks expected by the HTTP middleware, keeping
// the middleware package free of prometheus imports.
func (m *Metrics) HTTPHooks() (
	onRequest func(method, route string, status int, latency time.Duration),
	onRateLimited func(),
) {
	onRequest = func(method, route string, status int, latency time.Duration) {
		m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
	}
	onRateLimited = func() {
		m.RateLimitedTotal.Inc()
	}
	return
}
