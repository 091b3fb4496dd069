// Command ziyou drives the game collection engine from the terminal for a
// single local user.
//
// Usage:
//
//	ziyou recommend --purpose relaxing --genre puzzle --device phone
//	ziyou results --genre rpg --count 5
//	ziyou wishlist toggle hades
//	ziyou compare hades elden-ring
//	ziyou theme toggle
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/ziyou/internal/catalog"
	"github.com/albapepper/ziyou/internal/config"
	"github.com/albapepper/ziyou/internal/gateway"
	"github.com/albapepper/ziyou/internal/maintenance"
	"github.com/albapepper/ziyou/internal/storage"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ziyou",
		Short:         "Find, filter, wishlist and compare game recommendations",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(recommendCmd())
	root.AddCommand(resultsCmd())
	root.AddCommand(wishlistCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(themeCmd())
	root.AddCommand(gameCmd())
	root.AddCommand(gcCmd())
	return root
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// env is what every command works against.
type env struct {
	cfg     *config.Config
	store   storage.Store
	catalog *catalog.Catalog
	gateway *gateway.Client
	badger  *storage.Badger // nil for the memory backend
}

// run handles config loading, storage, and context cancellation.
func run(fn func(ctx context.Context, e *env) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: max(cfg.Level(), slog.LevelWarn)}))

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	e := &env{
		cfg:     cfg,
		catalog: cat,
		gateway: gateway.NewClient(gateway.Options{
			BaseURL:           cfg.APIBase,
			Timeout:           cfg.GatewayTimeout,
			RequestsPerMinute: cfg.GatewayRequestsPerMinute,
		}, logger),
	}

	switch cfg.StorageBackend {
	case config.StorageMemory:
		e.store = storage.NewMemory()
	default:
		db, err := storage.OpenBadger(cfg.StorageDir, logger)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer db.Close()
		e.store = db
		e.badger = db
	}

	return fn(ctx, e)
}

// --------------------------------------------------------------------------
// gc command
// --------------------------------------------------------------------------

func gcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gc",
		Short: "Reclaim space in the local store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, e *env) error {
				if e.badger == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "memory backend: nothing to reclaim")
					return nil
				}
				return maintenance.Compact(e.badger, logger)
			})
		},
	}
}
