package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kitab/kitab-backend/internal/api"
	"github.com/kitab/kitab-backend/internal/config"
	"github.com/kitab/kitab-backend/internal/metrics"
)

func baseConfig() *config.Config {
	return &config.Config{
		HTTPPort:        8080,
		MaxRequestBytes: 1 << 20,
		MetricsEnabled:  true,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

func newRouter(cfg *config.Config) (http.Handler, *metrics.Metrics) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	return api.NewRouter(cfg, reg, m, zap.NewNop()), m
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter_SystemRoutes(t *testing.T) {
	router, _ := newRouter(baseConfig())

	rec := get(router, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"kitab-backend"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	rec = get(router, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Kitab API","status":"running"}`, rec.Body.String())
}

func TestRouter_PostHealthNotHandled(t *testing.T) {
	router, _ := newRouter(baseConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.NotContains(t, rec.Body.String(), "healthy")
}

func TestRouter_RecordsRequestMetrics(t *testing.T) {
	router, m := newRouter(baseConfig())

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, get(router, "/health").Code)
	}
	get(router, "/missing")

	assert.Equal(t, float64(3), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		router, _ := newRouter(baseConfig())
		get(router, "/health")

		rec := get(router, "/metrics")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := baseConfig()
		cfg.MetricsEnabled = false
		router, _ := newRouter(cfg)

		assert.Equal(t, http.StatusNotFound, get(router, "/metrics").Code)
	})
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := baseConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	router, m := newRouter(cfg)

	assert.Equal(t, http.StatusNotFound, get(router, "/missing").Code)

	rec := get(router, "/missing")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RateLimitedTotal))
}

func TestRouter_RateLimitSkipsSystemRoutes(t *testing.T) {
	cfg := baseConfig()
	cfg.RateLimit = 5
	router, m := newRouter(cfg)

	for i := 0; i < 20; i++ {
		rec := get(router, "/health")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
		require.JSONEq(t, `{"status":"healthy","service":"kitab-backend"}`, rec.Body.String())

		rec = get(router, "/")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
		require.JSONEq(t, `{"message":"Kitab API","status":"running"}`, rec.Body.String())
	}
	assert.Equal(t, float64(0), testutil.ToFloat64(m.RateLimitedTotal))

	// system traffic consumed no tokens: the whole burst is still available
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusNotFound, get(router, "/missing").Code, "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(router, "/missing").Code)
}

func TestRouter_RateLimitDisabledByDefault(t *testing.T) {
	router, _ := newRouter(baseConfig())

	for i := 0; i < 150; i++ {
		require.Equal(t, http.StatusOK, get(router, "/").Code)
	}
}
