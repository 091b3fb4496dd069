package compare

import (
	"math"
	"reflect"
	"testing"

	"github.com/albapepper/ziyou/internal/catalog"
	"github.com/albapepper/ziyou/internal/game"
)

func priced(id string, prices ...string) game.Game {
	g := game.Game{ID: id, Difficulty: game.DifficultyMedium}
	for _, p := range prices {
		g.BuyLinks = append(g.BuyLinks, game.BuyLink{Platform: "Steam", Price: p})
	}
	return g
}

func scoredGame(id string, mc float64) game.Game {
	return game.Game{ID: id, Scores: game.Scores{Metacritic: mc}, Difficulty: game.DifficultyMedium}
}

func mustRow(t *testing.T, m Matrix, key string) Row {
	t.Helper()
	for _, r := range m.Rows {
		if r.Key == key {
			return r
		}
	}
	t.Fatalf("row %q missing", key)
	return Row{}
}

func TestTieHasNoHighlight(t *testing.T) {
	m := Build([]game.Game{scoredGame("a", 80), scoredGame("b", 80), scoredGame("c", 80)})
	if _, ok := mustRow(t, m, RowMetacritic).Highlighted(); ok {
		t.Error("identical scores must not highlight")
	}
	if _, ok := mustRow(t, m, RowDifficulty).Highlighted(); ok {
		t.Error("identical difficulty must not highlight")
	}
}

func TestMaxHighlightFirstWinner(t *testing.T) {
	m := Build([]game.Game{scoredGame("a", 70), scoredGame("b", 90), scoredGame("c", 90)})
	if got := mustRow(t, m, RowMetacritic).Highlight; got != 1 {
		t.Errorf("highlight = %d, want 1", got)
	}
}

func TestSingleGameNeverHighlights(t *testing.T) {
	m := Build([]game.Game{scoredGame("a", 99)})
	for _, r := range m.Rows {
		if r.Highlight != NoHighlight {
			t.Errorf("row %s highlighted %d with one column", r.Key, r.Highlight)
		}
	}
}

func TestDifficultyLowerIsBetter(t *testing.T) {
	games := []game.Game{
		{ID: "a", Difficulty: game.DifficultyVeryHard},
		{ID: "b", Difficulty: game.DifficultyEasy},
		{ID: "c", Difficulty: game.DifficultyHard},
	}
	r := mustRow(t, Build(games), RowDifficulty)
	if r.Highlight != 1 {
		t.Errorf("highlight = %d, want 1", r.Highlight)
	}
	if !reflect.DeepEqual(r.Values, []string{"非常困难", "简单", "困难"}) {
		t.Errorf("values = %v", r.Values)
	}
}

func TestFreeIsCheapest(t *testing.T) {
	games := []game.Game{
		priced("a", "¥59"),
		priced("b", game.FreePrice),
		priced("c", "¥199"),
	}
	if PriceFloor(games[1]) != 0 {
		t.Errorf("free floor = %v", PriceFloor(games[1]))
	}
	r := mustRow(t, Build(games), RowPrice)
	if r.Highlight != 1 {
		t.Errorf("cheapest highlight = %d, want 1", r.Highlight)
	}
	if !reflect.DeepEqual(r.Values, []string{"¥59", "免费", "¥199"}) {
		t.Errorf("values = %v", r.Values)
	}
}

func TestPriceFloor(t *testing.T) {
	tests := []struct {
		name string
		g    game.Game
		want float64
	}{
		{"min of parseable", priced("x", "¥199", "¥59", "¥80"), 59},
		{"unparseable ignored", priced("x", "联系客服", "¥45.5"), 45.5},
		{"free wins over prices", priced("x", "¥10", game.FreePrice), 0},
		{"nothing parseable", priced("x", "", "待定"), math.Inf(1)},
		{"no links", priced("x"), math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceFloor(tt.g); got != tt.want {
				t.Errorf("PriceFloor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnboundedPriceNeverWins(t *testing.T) {
	games := []game.Game{priced("a", ""), priced("b", "¥300")}
	if got := mustRow(t, Build(games), RowPrice).Highlight; got != 1 {
		t.Errorf("highlight = %d, want 1", got)
	}
	games = []game.Game{priced("a", ""), priced("b")}
	if got := mustRow(t, Build(games), RowPrice).Highlight; got != NoHighlight {
		t.Errorf("all-unbounded highlight = %d, want none", got)
	}
}

func TestPriceRange(t *testing.T) {
	tests := []struct {
		name string
		g    game.Game
		want string
	}{
		{"no links", priced("x"), "-"},
		{"free", priced("x", "¥30", game.FreePrice), "免费"},
		{"single", priced("x", "¥59"), "¥59"},
		{"collapsed", priced("x", "¥59", "59元"), "¥59"},
		{"span", priced("x", "¥199", "¥59.5"), "¥59.5 - ¥199"},
		{"raw fallback", priced("x", "", "待定"), ""},
		{"raw fallback text", priced("x", "待定"), "待定"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceRange(tt.g); got != tt.want {
				t.Errorf("PriceRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"¥59", 59, true},
		{"约 22 小时", 22, true},
		{"1.2.3", 1.2, true},
		{".5", 0.5, true},
		{"...", 0, false},
		{"免费", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseNumber(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseNumber(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPlaytimeLongestWins(t *testing.T) {
	games := []game.Game{
		{ID: "a", Playtime: "约 10 小时"},
		{ID: "b", Playtime: ""},
		{ID: "c", Playtime: "约 60 小时"},
	}
	r := mustRow(t, Build(games), RowPlaytime)
	if r.Highlight != 2 {
		t.Errorf("highlight = %d, want 2", r.Highlight)
	}
	if r.Values[1] != Placeholder {
		t.Errorf("empty playtime shown as %q", r.Values[1])
	}
}

func TestCompareResolvesThroughCatalog(t *testing.T) {
	c, _ := catalog.New([]game.Game{
		scoredGame("a", 70), scoredGame("b", 80), scoredGame("c", 90),
		scoredGame("d", 60), scoredGame("e", 99),
	})

	m := Compare(c, []string{"a", "ghost", "b", "c", "d", "e"})
	if got := game.IDs(m.Games); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("games = %v (ids past the fourth must be dropped before resolving)", got)
	}
	for _, r := range m.Rows {
		if len(r.Values) != len(m.Games) {
			t.Errorf("row %s has %d values for %d games", r.Key, len(r.Values), len(m.Games))
		}
	}

	empty := Compare(c, []string{"ghost", "phantom"})
	if !empty.Empty() {
		t.Error("unresolvable ids should yield an empty matrix")
	}
	if !Compare(c, nil).Empty() {
		t.Error("no ids should yield an empty matrix")
	}
}

func TestDisplayRowsUseLabels(t *testing.T) {
	g := game.Game{
		ID:        "x",
		Genres:    []string{"action", "Indie"},
		Platforms: []string{"steam"},
		Devices:   nil,
	}
	m := Build([]game.Game{g})
	if got := mustRow(t, m, RowGenres).Values[0]; got != "动作、Indie" {
		t.Errorf("genres = %q", got)
	}
	if got := mustRow(t, m, RowPlatforms).Values[0]; got != "Steam" {
		t.Errorf("platforms = %q", got)
	}
	if got := mustRow(t, m, RowDevices).Values[0]; got != Placeholder {
		t.Errorf("devices = %q", got)
	}
}
