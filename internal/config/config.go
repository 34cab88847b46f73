package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kitab/kitab-backend/internal/domain"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default, so an empty environment yields a working server.
type Config struct {
	// Server
	HTTPPort        int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxRequestBytes int64

	// Rate limiting: requests per second across the whole server. 0 disables.
	RateLimit      int
	RateLimitBurst int

	MetricsEnabled bool

	// Logging
	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:        getInt("HTTP_PORT", 8080),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     getDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		MaxRequestBytes: int64(getInt("MAX_REQUEST_BYTES", 1<<20)),

		RateLimit:      getInt("RATE_LIMIT", 0),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 0),

		MetricsEnabled: getBool("METRICS_ENABLED", true),

		LogLevel:  strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info"))),
		LogFormat: strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", "json"))),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid field, wrapped in domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("%w: HTTP_PORT must be in 1-65535, got %d", domain.ErrInvalidConfig, c.HTTPPort)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: RATE_LIMIT must not be negative", domain.ErrInvalidConfig)
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("%w: RATE_LIMIT_BURST must not be negative", domain.ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL: %v", domain.ErrInvalidConfig, err)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("%w: LOG_FORMAT must be json or console, got %q", domain.ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.HTTPPort)
}

// NewLogger builds the process logger. json selects zap's production
// encoder, console the development one.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if c.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("service", domain.ServiceName)), nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
