// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/server and cmd/ziyou.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage backends.
const (
	StorageBadger = "badger"
	StorageMemory = "memory"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Recommendation service
	APIBase                  string
	GatewayTimeout           time.Duration
	GatewayRequestsPerMinute int
	GatewayBreakerFailures   int
	GatewayBreakerCooldown   time.Duration

	// Browse server
	ServerHost  string
	ServerPort  int
	Environment string // development, staging, production
	Debug       bool
	LogLevel    slog.Level

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Local state
	StorageBackend string
	StorageDir     string
	CatalogPath    string

	// Cache
	CacheEnabled bool
	ResultsTTL   time.Duration

	// Results view
	DisplayCount int

	// Metrics
	MetricsEnabled bool

	// Maintenance
	StorageGCInterval  time.Duration
	CacheSweepInterval time.Duration
	SessionIdleTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	level, err := parseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIBase:                  strings.TrimRight(envOr("API_BASE", "http://localhost:8000"), "/"),
		GatewayTimeout:           time.Duration(envInt("GATEWAY_TIMEOUT_SECONDS", 60)) * time.Second,
		GatewayRequestsPerMinute: envInt("GATEWAY_REQUESTS_PER_MINUTE", 30),
		GatewayBreakerFailures:   envInt("GATEWAY_BREAKER_FAILURES", 5),
		GatewayBreakerCooldown:   envDuration("GATEWAY_BREAKER_COOLDOWN", 30*time.Second),

		ServerHost:  envOr("SERVER_HOST", "0.0.0.0"),
		ServerPort:  envInt("SERVER_PORT", envInt("PORT", 8080)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),
		LogLevel:    level,

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		StorageBackend: strings.ToLower(envOr("STORAGE_BACKEND", StorageBadger)),
		StorageDir:     envOr("STORAGE_DIR", defaultStorageDir()),
		CatalogPath:    envOr("CATALOG_PATH", ""),

		CacheEnabled: envBool("CACHE_ENABLED", true),
		ResultsTTL:   time.Duration(envInt("RESULTS_TTL_MINUTES", 60)) * time.Minute,

		DisplayCount: envInt("DISPLAY_COUNT", 8),

		MetricsEnabled: envBool("METRICS_ENABLED", true),

		StorageGCInterval:  envDuration("STORAGE_GC_INTERVAL", 10*time.Minute),
		CacheSweepInterval: envDuration("CACHE_SWEEP_INTERVAL", time.Minute),
		SessionIdleTimeout: envDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour),
	}

	if cfg.StorageBackend != StorageBadger && cfg.StorageBackend != StorageMemory {
		return nil, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageBadger, StorageMemory, cfg.StorageBackend)
	}
	if cfg.DisplayCount <= 0 {
		return nil, fmt.Errorf("DISPLAY_COUNT must be positive, got %d", cfg.DisplayCount)
	}
	if cfg.RateLimitEnabled {
		if cfg.RateLimitRequests <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", cfg.RateLimitRequests)
		}
		if cfg.RateLimitWindow <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", cfg.RateLimitWindow)
		}
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Level is the log level, forced to debug when DEBUG is set.
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return c.LogLevel
}

// Addr is the listen address of the browse server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

func defaultStorageDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "ziyou")
	}
	return ".ziyou"
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return l, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go duration strings ("90s", "5m"). "0" is kept, so
// callers can treat it as "disabled"; negative or malformed values fall back.
func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
