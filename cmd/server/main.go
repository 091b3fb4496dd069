// Command server is the Ziyou browse server: a local HTTP front end over the
// game collection engine.
//
// Usage:
//
//	ziyou-server
//	SERVER_PORT=9000 API_BASE=http://localhost:8000 ziyou-server

// @title Ziyou Browse API
// @version 1.0.0
// @description Local browse server for game recommendations: survey submission, filtered and shuffled results, wishlist, side-by-side comparison and theme.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @contact.name Ziyou
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/ziyou/internal/api"
	"github.com/albapepper/ziyou/internal/cache"
	"github.com/albapepper/ziyou/internal/catalog"
	"github.com/albapepper/ziyou/internal/config"
	"github.com/albapepper/ziyou/internal/gateway"
	"github.com/albapepper/ziyou/internal/maintenance"
	"github.com/albapepper/ziyou/internal/session"
	"github.com/albapepper/ziyou/internal/storage"

	_ "github.com/albapepper/ziyou/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Catalog
	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		logger.Error("Failed to load catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	logger.Info("Catalog loaded", "games", cat.Len(), "path", cfg.CatalogPath)

	// Local storage
	var (
		store   storage.Store
		targets maintenance.Targets
	)
	switch cfg.StorageBackend {
	case config.StorageMemory:
		store = storage.NewMemory()
		logger.Warn("Using in-memory storage; wishlists and themes are lost on restart")
	default:
		db, err := storage.OpenBadger(cfg.StorageDir, logger)
		if err != nil {
			logger.Error("Failed to open storage", "dir", cfg.StorageDir, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		store = db
		targets.Storage = db
		logger.Info("Storage opened", "backend", cfg.StorageBackend, "dir", cfg.StorageDir)
	}

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	targets.Cache = appCache
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Recommendation gateway
	gw := gateway.NewClient(gateway.Options{
		BaseURL:           cfg.APIBase,
		Timeout:           cfg.GatewayTimeout,
		RequestsPerMinute: cfg.GatewayRequestsPerMinute,
		BreakerFailures:   uint32(max(cfg.GatewayBreakerFailures, 0)),
		BreakerCooldown:   cfg.GatewayBreakerCooldown,
	}, logger)
	logger.Info("Recommendation gateway configured", "api_base", cfg.APIBase, "breaker", gw.BreakerState())

	sessions := session.NewManager(store, gw, logger)
	targets.Sessions = sessions

	// Start maintenance tickers (storage GC, cache sweep, session sweep)
	go maintenance.Start(ctx, targets, maintenance.Config{
		StorageGCInterval:    cfg.StorageGCInterval,
		CacheSweepInterval:   cfg.CacheSweepInterval,
		SessionSweepInterval: cfg.SessionIdleTimeout / 4,
		SessionIdleTimeout:   cfg.SessionIdleTimeout,
	}, logger)

	// Create router
	router := api.NewRouter(ctx, api.Deps{
		Catalog:  cat,
		Cache:    appCache,
		Sessions: sessions,
		Gateway:  gw,
		Config:   cfg,
		Logger:   logger,
	})

	// Create HTTP server. WriteTimeout covers a full recommendation call.
	addr := cfg.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.GatewayTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Ziyou browse server",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
