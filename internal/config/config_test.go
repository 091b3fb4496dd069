package config

import (
	"log/slog"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"API_BASE", "SERVER_PORT", "PORT", "STORAGE_BACKEND", "DISPLAY_COUNT", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBase != "http://localhost:8000" {
		t.Errorf("APIBase = %q", cfg.APIBase)
	}
	if cfg.DisplayCount != 8 || cfg.StorageBackend != StorageBadger || cfg.LogLevel != slog.LevelInfo {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE", "https://rec.example.com/")
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "Memory")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("CACHE_SWEEP_INTERVAL", "15s")
	t.Setenv("GATEWAY_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIBase != "https://rec.example.com" {
		t.Errorf("APIBase = %q", cfg.APIBase)
	}
	if cfg.ServerPort != 9000 || cfg.StorageBackend != StorageMemory || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("cfg = %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSAllowOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("CORSAllowOrigins = %v", cfg.CORSAllowOrigins)
	}
	if cfg.CacheSweepInterval != 15*time.Second {
		t.Errorf("CacheSweepInterval = %v", cfg.CacheSweepInterval)
	}
	if cfg.GatewayTimeout != 60*time.Second {
		t.Errorf("bad int should fall back, got %v", cfg.GatewayTimeout)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"STORAGE_BACKEND", "postgres"},
		{"DISPLAY_COUNT", "0"},
		{"LOG_LEVEL", "loud"},
		{"RATE_LIMIT_WINDOW", "0"},
		{"RATE_LIMIT_WINDOW", "-5"},
		{"RATE_LIMIT_REQUESTS", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}

func TestRateLimitCheckedOnlyWhenEnabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WINDOW", "0")
	if _, err := Load(); err != nil {
		t.Errorf("disabled limiter should not validate its window: %v", err)
	}
}

func TestZeroDurationDisables(t *testing.T) {
	t.Setenv("CACHE_SWEEP_INTERVAL", "0")
	t.Setenv("STORAGE_GC_INTERVAL", "-1m")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CacheSweepInterval != 0 {
		t.Errorf("CacheSweepInterval = %v, want 0", cfg.CacheSweepInterval)
	}
	if cfg.StorageGCInterval != 10*time.Minute {
		t.Errorf("negative interval should fall back, got %v", cfg.StorageGCInterval)
	}
}

func TestDebugForcesDebugLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DEBUG", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v", cfg.Level())
	}
	cfg.Debug = false
	if cfg.Level() != slog.LevelWarn {
		t.Errorf("Level() = %v", cfg.Level())
	}
}
