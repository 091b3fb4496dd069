package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/albapepper/ziyou/internal/filter"
	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/profile"
	"github.com/albapepper/ziyou/internal/sampler"
	"github.com/albapepper/ziyou/internal/storage"
	"github.com/albapepper/ziyou/internal/survey"
	"github.com/albapepper/ziyou/internal/wishlist"
)

// resultsKey holds the last recommendation list so `results` can browse it.
const resultsKey = "ziyou-results"

// --------------------------------------------------------------------------
// recommend command
// --------------------------------------------------------------------------

func recommendCmd() *cobra.Command {
	var (
		experience string
		hours      int
		purposes   []string
		genres     []string
		devices    []string
		platforms  []string
		age        string
		favorites  []string
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Answer the survey and fetch recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, e *env) error {
				s := survey.New(e.gateway)
				err := s.Edit(func(p *profile.Profile) {
					p.SetExperience(experience)
					p.SetWeeklyHours(hours)
					for _, v := range purposes {
						p.TogglePurpose(v)
					}
					for _, v := range genres {
						p.ToggleGenre(v)
					}
					for _, v := range devices {
						p.ToggleDevice(v)
					}
					for _, v := range platforms {
						p.TogglePlatform(v)
					}
					p.SetAgePreference(age)
					for _, v := range favorites {
						p.AddFavoriteGame(v)
					}
				})
				if err != nil {
					return err
				}
				if err := s.Fill(s.Profile()); err != nil {
					return err
				}

				games, err := s.Submit(ctx)
				if errors.Is(err, survey.ErrNotLastStep) {
					return fmt.Errorf("incomplete answers: at least one --purpose, --genre and --device is required")
				}
				if err != nil {
					return err
				}

				raw, err := json.Marshal(games)
				if err != nil {
					return fmt.Errorf("encode results: %w", err)
				}
				if err := e.store.Set(resultsKey, string(raw)); err != nil {
					logger.Warn("Failed to save results", "error", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d games recommended\n", len(games))
				wl := wishlist.Load(e.store, logger)
				printGames(cmd.OutOrStdout(), sampler.Sample(games, e.cfg.DisplayCount, nil), wl)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&experience, "experience", profile.ExperienceCasual, "Experience level (beginner, casual, moderate, hardcore)")
	f.IntVar(&hours, "hours", 10, "Weekly play hours (1-40, 40 means 40+)")
	f.StringSliceVar(&purposes, "purpose", nil, "Why you play (competitive, relaxing, story, social, creative)")
	f.StringSliceVar(&genres, "genre", nil, "Preferred genres")
	f.StringSliceVar(&devices, "device", nil, "Devices you play on (phone, tablet, pc, handheld, console)")
	f.StringSliceVar(&platforms, "platform", nil, "Preferred stores (steam, epic, psstore, eshop, appstore, googleplay, xbox)")
	f.StringVar(&age, "age", profile.AgeBoth, "Classic or new games (classic, new, both)")
	f.StringSliceVar(&favorites, "favorite", nil, "Favorite games (up to 5)")
	return cmd
}

// --------------------------------------------------------------------------
// results command
// --------------------------------------------------------------------------

func resultsCmd() *cobra.Command {
	var (
		genres       []string
		devices      []string
		difficulties []string
		count        int
	)
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show a random sample of the last recommendations (or the catalog)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, e *env) error {
				games, source := lastResults(e)
				sel := filter.Selection{
					Genres:       filter.ConstrainedTo(genres...),
					Devices:      filter.ConstrainedTo(devices...),
					Difficulties: filter.ConstrainedTo(difficulties...),
				}
				filtered := filter.Apply(games, sel)
				if count <= 0 {
					count = e.cfg.DisplayCount
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%d of %d %s games match\n", len(filtered), len(games), source)
				printGames(out, sampler.Sample(filtered, count, nil), wishlist.Load(e.store, logger))
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&genres, "genre", nil, "Only these genres")
	f.StringSliceVar(&devices, "device", nil, "Only these devices")
	f.StringSliceVar(&difficulties, "difficulty", nil, "Only these difficulties (easy, medium, hard, very_hard)")
	f.IntVar(&count, "count", 0, "How many games to show (default DISPLAY_COUNT)")
	return cmd
}

// lastResults returns the saved recommendation list, or the catalog when
// there is none.
func lastResults(e *env) ([]game.Game, string) {
	raw, err := e.store.Get(resultsKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read saved results", "error", err)
		}
		return e.catalog.All(), "catalog"
	}
	var games []game.Game
	if err := json.Unmarshal([]byte(raw), &games); err != nil {
		logger.Warn("Saved results are corrupt, using the catalog", "error", err)
		return e.catalog.All(), "catalog"
	}
	return games, "recommended"
}

func printGames(w io.Writer, games []game.Game, wl *wishlist.Store) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tGENRES\tDIFFICULTY\tMETACRITIC")
	for _, g := range games {
		mark := ""
		if wl.IsWishlisted(g.ID) {
			mark = "♥"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%g\n",
			mark, g.ID, g.Name,
			strings.Join(game.Labels(game.GenreLabels, g.Genres), "/"),
			g.Difficulty.Label(), g.Scores.Metacritic)
	}
	tw.Flush()
}
