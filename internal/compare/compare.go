// Package compare builds the side-by-side comparison matrix for up to four
// games, marking the best value in each metric row.
package compare

import (
	"math"
	"strings"

	"github.com/albapepper/ziyou/internal/catalog"
	"github.com/albapepper/ziyou/internal/game"
)

const (
	// MaxGames is the widest comparison; extra ids are dropped.
	MaxGames = 4

	// NoHighlight marks a row without a best column.
	NoHighlight = -1

	// Placeholder is shown where a game has nothing to display.
	Placeholder = "-"
)

// Row keys.
const (
	RowGenres     = "genres"
	RowMetacritic = "metacritic"
	RowIGN        = "ign"
	RowTapTap     = "taptap"
	RowDifficulty = "difficulty"
	RowPlaytime   = "playtime"
	RowPlatforms  = "platforms"
	RowDevices    = "devices"
	RowPrice      = "price"
)

// Row is one aligned line of the matrix: one display value per game column.
type Row struct {
	Key       string   `json:"key"`
	Label     string   `json:"label"`
	Values    []string `json:"values"`
	Highlight int      `json:"highlight"`
}

// Highlighted returns the best column, if any.
func (r Row) Highlighted() (int, bool) {
	return r.Highlight, r.Highlight != NoHighlight
}

// Matrix is the comparison result. Games and every row's Values share the
// same column order.
type Matrix struct {
	Games []game.Game `json:"games"`
	Rows  []Row       `json:"rows"`
}

// Empty reports whether nothing could be compared.
func (m Matrix) Empty() bool {
	return len(m.Games) == 0
}

// Compare resolves up to MaxGames ids through the catalog and builds the
// matrix. Ids past the fourth are ignored and ids the catalog does not know
// are dropped; if nothing resolves the matrix is Empty.
func Compare(c *catalog.Catalog, ids []string) Matrix {
	if len(ids) > MaxGames {
		ids = ids[:MaxGames]
	}
	return Build(c.LookupMany(ids))
}

// Build computes the matrix for already-resolved games.
func Build(games []game.Game) Matrix {
	if len(games) == 0 {
		return Matrix{Games: []game.Game{}, Rows: []Row{}}
	}
	if len(games) > MaxGames {
		games = games[:MaxGames]
	}

	metacritic := column(games, func(g game.Game) float64 { return g.Scores.Metacritic })
	ign := column(games, func(g game.Game) float64 { return g.Scores.IGN })
	taptap := column(games, func(g game.Game) float64 { return g.Scores.TapTap })
	difficulty := column(games, func(g game.Game) float64 { return float64(g.Difficulty.Rank()) })
	playtime := column(games, playtimeHours)
	price := column(games, PriceFloor)

	return Matrix{
		Games: games,
		Rows: []Row{
			display(RowGenres, "类型", games, func(g game.Game) string {
				return joinLabels(game.GenreLabels, g.Genres)
			}),
			scored(RowMetacritic, "Metacritic", formatNumbers(metacritic), maxIndex(metacritic)),
			scored(RowIGN, "IGN", formatNumbers(ign), maxIndex(ign)),
			scored(RowTapTap, "TapTap", formatNumbers(taptap), maxIndex(taptap)),
			scored(RowDifficulty, "难度", texts(games, func(g game.Game) string {
				return g.Difficulty.Label()
			}), minIndex(difficulty)),
			scored(RowPlaytime, "游玩时长", texts(games, func(g game.Game) string {
				return orPlaceholder(g.Playtime)
			}), maxIndex(playtime)),
			display(RowPlatforms, "平台", games, func(g game.Game) string {
				return joinLabels(game.PlatformLabels, g.Platforms)
			}),
			display(RowDevices, "设备", games, func(g game.Game) string {
				return joinLabels(game.DeviceLabels, g.Devices)
			}),
			scored(RowPrice, "价格", texts(games, PriceRange), minIndex(price)),
		},
	}
}

// maxIndex returns the index of the largest value, the first one on ties
// with it, or NoHighlight when every value is equal (including a single
// column).
func maxIndex(nums []float64) int {
	return bestIndex(nums, func(a, b float64) bool { return a > b })
}

// minIndex is maxIndex for "lower is better" rows.
func minIndex(nums []float64) int {
	return bestIndex(nums, func(a, b float64) bool { return a < b })
}

func bestIndex(nums []float64, better func(a, b float64) bool) int {
	if len(nums) == 0 {
		return NoHighlight
	}
	best, allSame := 0, true
	for i := 1; i < len(nums); i++ {
		if nums[i] != nums[0] {
			allSame = false
		}
		if better(nums[i], nums[best]) {
			best = i
		}
	}
	if allSame {
		return NoHighlight
	}
	return best
}

// playtimeHours reads the hour figure out of free text like "约 22 小时".
// Unknown playtime never wins the longest-playtime highlight.
func playtimeHours(g game.Game) float64 {
	if v, ok := parseNumber(g.Playtime); ok {
		return v
	}
	return math.Inf(-1)
}

func column(games []game.Game, metric func(game.Game) float64) []float64 {
	out := make([]float64, len(games))
	for i, g := range games {
		out[i] = metric(g)
	}
	return out
}

func texts(games []game.Game, f func(game.Game) string) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = f(g)
	}
	return out
}

func formatNumbers(nums []float64) []string {
	out := make([]string, len(nums))
	for i, v := range nums {
		out[i] = formatNumber(v)
	}
	return out
}

func scored(key, label string, values []string, highlight int) Row {
	return Row{Key: key, Label: label, Values: values, Highlight: highlight}
}

func display(key, label string, games []game.Game, f func(game.Game) string) Row {
	return Row{Key: key, Label: label, Values: texts(games, f), Highlight: NoHighlight}
}

func joinLabels(labels map[string]string, keys []string) string {
	return orPlaceholder(strings.Join(game.Labels(labels, keys), "、"))
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
