package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/albapepper/ziyou/internal/compare"
	"github.com/albapepper/ziyou/internal/theme"
	"github.com/albapepper/ziyou/internal/wishlist"
)

// --------------------------------------------------------------------------
// wishlist command
// --------------------------------------------------------------------------

func wishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the wishlist",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List wishlisted games",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, e *env) error {
				wl := wishlist.Load(e.store, logger)
				if wl.Len() == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "wishlist is empty")
					return nil
				}
				printGames(cmd.OutOrStdout(), wl.Games(e.catalog), wl)
				return nil
			})
		},
	})
	cmd.AddCommand(wishlistMutation("toggle", "Add a game if absent, remove it if present",
		func(wl *wishlist.Store, id string) { wl.Toggle(id) }))
	cmd.AddCommand(wishlistMutation("add", "Add a game",
		func(wl *wishlist.Store, id string) { wl.Add(id) }))
	cmd.AddCommand(wishlistMutation("remove", "Remove a game",
		func(wl *wishlist.Store, id string) { wl.Remove(id) }))
	return cmd
}

func wishlistMutation(use, short string, apply func(*wishlist.Store, string)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, e *env) error {
				wl := wishlist.Load(e.store, logger)
				for _, id := range args {
					apply(wl, id)
					state := "not wishlisted"
					if wl.IsWishlisted(id) {
						state = "wishlisted"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", id, state)
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// compare command
// --------------------------------------------------------------------------

func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [id...]",
		Short: "Compare up to four games (the wishlist when no ids are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, e *env) error {
				ids := args
				if len(ids) == 0 {
					ids = wishlist.Load(e.store, logger).List()
				}
				m := compare.Compare(e.catalog, ids)
				if m.Empty() {
					fmt.Fprintln(cmd.OutOrStdout(), "nothing to compare")
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				header := make([]string, len(m.Games))
				for i, g := range m.Games {
					header[i] = g.Name
				}
				fmt.Fprintf(tw, "\t%s\n", strings.Join(header, "\t"))
				for _, r := range m.Rows {
					cells := make([]string, len(r.Values))
					for i, v := range r.Values {
						if best, ok := r.Highlighted(); ok && best == i {
							v = "*" + v
						}
						cells[i] = v
					}
					fmt.Fprintf(tw, "%s\t%s\n", r.Label, strings.Join(cells, "\t"))
				}
				return tw.Flush()
			})
		},
	}
}

// --------------------------------------------------------------------------
// theme command
// --------------------------------------------------------------------------

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or switch the UI theme",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, e *env) error {
				fmt.Fprintln(cmd.OutOrStdout(), theme.Load(e.store, logger).Current())
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between cyber and dopamine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, e *env) error {
				fmt.Fprintln(cmd.OutOrStdout(), theme.Load(e.store, logger).Toggle())
				return nil
			})
		},
	})
	return cmd
}

// --------------------------------------------------------------------------
// game command
// --------------------------------------------------------------------------

func gameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "game <id>",
		Short: "Print one catalog game as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, e *env) error {
				g, ok := e.catalog.Lookup(args[0])
				if !ok {
					return fmt.Errorf("game %q not found", args[0])
				}
				out, err := json.MarshalIndent(g, "", "  ")
				if err != nil {
					return fmt.Errorf("encode game: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			})
		},
	}
}
