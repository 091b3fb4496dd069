// Package maintenance runs periodic background tasks as Go tickers:
// reclaiming badger value-log space, evicting expired cache entries and
// dropping idle browser sessions from memory.
package maintenance

import (
	"context"
	"log/slog"
	"time"
)

// DiscardRatio is the value-log garbage ratio passed to badger.
const DiscardRatio = 0.5

// GarbageCollector reclaims storage space.
type GarbageCollector interface {
	CollectGarbage(discardRatio float64) error
}

// Evicter drops expired cache entries.
type Evicter interface {
	Evict() int
}

// Sweeper drops sessions idle for longer than the given duration.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// Targets are the things maintenance works on. Nil targets are skipped.
type Targets struct {
	Storage  GarbageCollector
	Cache    Evicter
	Sessions Sweeper
}

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	StorageGCInterval    time.Duration // badger value-log GC
	CacheSweepInterval   time.Duration // expired cache entries
	SessionSweepInterval time.Duration // idle in-memory sessions
	SessionIdleTimeout   time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		StorageGCInterval:    10 * time.Minute,
		CacheSweepInterval:   1 * time.Minute,
		SessionSweepInterval: 5 * time.Minute,
		SessionIdleTimeout:   2 * time.Hour,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, targets Targets, cfg Config, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("Maintenance tickers started",
		"storage_gc", cfg.StorageGCInterval,
		"cache_sweep", cfg.CacheSweepInterval,
		"session_sweep", cfg.SessionSweepInterval)

	tickers := make([]*time.Ticker, 0, 3)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	if targets.Storage != nil && cfg.StorageGCInterval > 0 {
		t := time.NewTicker(cfg.StorageGCInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, "storage_gc", func() { collectGarbage(targets.Storage, logger) })
	}

	if targets.Cache != nil && cfg.CacheSweepInterval > 0 {
		t := time.NewTicker(cfg.CacheSweepInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, "cache_sweep", func() { evictCache(targets.Cache, logger) })
	}

	if targets.Sessions != nil && cfg.SessionSweepInterval > 0 && cfg.SessionIdleTimeout > 0 {
		t := time.NewTicker(cfg.SessionSweepInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, "session_sweep", func() { sweepSessions(targets.Sessions, cfg.SessionIdleTimeout, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, name string, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

func collectGarbage(gc GarbageCollector, logger *slog.Logger) {
	start := time.Now()
	if err := gc.CollectGarbage(DiscardRatio); err != nil {
		logger.Warn("Storage GC failed", "error", err)
		return
	}
	logger.Debug("Storage GC finished", "duration", time.Since(start).Round(time.Millisecond))
}

func evictCache(c Evicter, logger *slog.Logger) {
	if n := c.Evict(); n > 0 {
		logger.Debug("Cache sweep: evicted expired entries", "count", n)
	}
}

func sweepSessions(s Sweeper, idle time.Duration, logger *slog.Logger) {
	if n := s.Sweep(idle); n > 0 {
		logger.Info("Session sweep: dropped idle sessions", "count", n)
	}
}
