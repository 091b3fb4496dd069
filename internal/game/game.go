// Package game defines the game record shared by the catalog, the
// recommendation gateway and the collection engine.
//
// A Game is treated as immutable once built. The ID is the only join key
// between the catalog, the wishlist and the comparison matrix.
package game

// Difficulty is the coarse difficulty bucket of a game.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyVeryHard Difficulty = "very_hard"
)

// Difficulties lists every difficulty in canonical (easiest first) order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyVeryHard}

// difficultyRank orders difficulties for comparison; lower is easier.
var difficultyRank = map[Difficulty]int{
	DifficultyEasy:     1,
	DifficultyMedium:   2,
	DifficultyHard:     3,
	DifficultyVeryHard: 4,
}

// Rank returns the ordinal of the difficulty (easy=1 .. very_hard=4), or 0
// for an unknown value.
func (d Difficulty) Rank() int {
	return difficultyRank[d]
}

// Valid reports whether d is one of the four known difficulties.
func (d Difficulty) Valid() bool {
	_, ok := difficultyRank[d]
	return ok
}

// Label returns the localized display label.
func (d Difficulty) Label() string {
	if l, ok := difficultyLabels[d]; ok {
		return l
	}
	return string(d)
}

var difficultyLabels = map[Difficulty]string{
	DifficultyEasy:     "简单",
	DifficultyMedium:   "中等",
	DifficultyHard:     "困难",
	DifficultyVeryHard: "非常困难",
}

// Scores holds one score per rating source. Each source has its own scale.
type Scores struct {
	Metacritic float64 `json:"metacritic"`
	IGN        float64 `json:"ign"`
	TapTap     float64 `json:"taptap"`
}

// BuyLink is a purchase link. Price is free text ("¥59", "免费", or empty
// when unknown).
type BuyLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Price    string `json:"price"`
	Icon     string `json:"icon"`
}

// FreePrice is the literal price marker for free-to-play games.
const FreePrice = "免费"

// Game is a single game record.
type Game struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	NameEn          string     `json:"nameEn"`
	Cover           string     `json:"cover"`
	Screenshots     []string   `json:"screenshots"`
	Genres          []string   `json:"genres"`
	Platforms       []string   `json:"platforms"`
	Devices         []string   `json:"devices"`
	ReleaseYear     int        `json:"releaseYear"`
	Scores          Scores     `json:"scores"`
	Description     string     `json:"description"`
	RecommendReason string     `json:"recommendReason"`
	VideoURL        string     `json:"videoUrl"`
	BuyLinks        []BuyLink  `json:"buyLinks"`
	Tags            []string   `json:"tags"`
	Developer       string     `json:"developer"`
	Publisher       string     `json:"publisher"`
	Playtime        string     `json:"playtime"`
	Difficulty      Difficulty `json:"difficulty"`
}

// IDs returns the identifiers of games in order.
func IDs(games []Game) []string {
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}
