package maintenance

import (
	"fmt"
	"log/slog"
	"time"
)

// Compact runs one storage GC pass. The CLI calls it before closing the
// store, since it never lives long enough for the ticker to fire.
func Compact(gc GarbageCollector, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	err := gc.CollectGarbage(DiscardRatio)
	dur := time.Since(start).Round(time.Millisecond)
	if err != nil {
		logger.Warn("Failed to compact storage", "duration", dur, "error", err)
		return fmt.Errorf("compact storage: %w", err)
	}
	logger.Debug("Compacted storage", "duration", dur)
	return nil
}
