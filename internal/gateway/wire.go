package gateway

import (
	"math"
	"regexp"
	"strings"

	"github.com/albapepper/ziyou/internal/game"
	"github.com/albapepper/ziyou/internal/profile"
)

// recommendRequest is the wire payload. Field names are an explicit table,
// not a renaming rule:
//
//	experienceLevel     -> experience_level
//	weeklyHours         -> weekly_hours
//	purposes            -> purposes
//	genrePreferences    -> genre_preferences
//	devices             -> devices
//	platformPreferences -> platform_preferences
//	agePreference       -> age_preference
//	favoriteGames       -> favorite_games
type recommendRequest struct {
	ExperienceLevel     string   `json:"experience_level"`
	WeeklyHours         int      `json:"weekly_hours"`
	Purposes            []string `json:"purposes"`
	GenrePreferences    []string `json:"genre_preferences"`
	Devices             []string `json:"devices"`
	PlatformPreferences []string `json:"platform_preferences"`
	AgePreference       string   `json:"age_preference"`
	FavoriteGames       []string `json:"favorite_games"`
}

func newRecommendRequest(p profile.Profile) recommendRequest {
	return recommendRequest{
		ExperienceLevel:     p.ExperienceLevel,
		WeeklyHours:         p.WeeklyHours,
		Purposes:            nonNil(p.Purposes),
		GenrePreferences:    nonNil(p.GenrePreferences),
		Devices:             nonNil(p.Devices),
		PlatformPreferences: nonNil(p.PlatformPreferences),
		AgePreference:       p.AgePreference,
		FavoriteGames:       nonNil(p.FavoriteGames),
	}
}

type recommendResponse struct {
	Games []wireGame `json:"games"`
}

type errorResponse struct {
	Detail any `json:"detail"`
}

type wireStore struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// wireGame is one enriched game as the recommendation service returns it.
type wireGame struct {
	Slug            string      `json:"slug"`
	Name            string      `json:"name"`
	NameEn          string      `json:"name_en"`
	Cover           string      `json:"cover"`
	Screenshots     []string    `json:"screenshots"`
	Genres          []string    `json:"genres"`
	Platforms       []string    `json:"platforms"`
	Metacritic      *float64    `json:"metacritic"`
	Rating          *float64    `json:"rating"`
	Description     string      `json:"description"`
	RecommendReason string      `json:"recommend_reason"`
	Stores          []wireStore `json:"stores"`
	ReleaseYear     *int        `json:"release_year"`
	Playtime        string      `json:"playtime"`
	Tags            []string    `json:"tags"`
	Developer       string      `json:"developer"`
	Publisher       string      `json:"publisher"`
}

var whitespace = regexp.MustCompile(`\s`)

// toGame maps a service record into the internal shape.
//
// The two vocabularies disagree on purpose and the mapping must stay as is,
// since the catalog already uses the internal meaning:
//
//	service "platforms" (hardware)   -> Game.Devices
//	service "stores"    (shops)      -> Game.Platforms and Game.BuyLinks
//
// The service reports a 0-5 rating; it becomes the IGN-style score as
// round(rating*2*10)/10. It has no TapTap score, no prices and no
// difficulty, which default to 0, "" and medium.
func (w wireGame) toGame() game.Game {
	platforms := make([]string, len(w.Stores))
	links := make([]game.BuyLink, len(w.Stores))
	for i, s := range w.Stores {
		platforms[i] = s.Name
		links[i] = game.BuyLink{
			Platform: s.Name,
			URL:      s.URL,
			Price:    "",
			Icon:     whitespace.ReplaceAllString(strings.ToLower(s.Name), ""),
		}
	}

	return game.Game{
		ID:              w.Slug,
		Name:            w.Name,
		NameEn:          w.NameEn,
		Cover:           w.Cover,
		Screenshots:     nonNil(w.Screenshots),
		Genres:          nonNil(w.Genres),
		Platforms:       platforms,
		Devices:         nonNil(w.Platforms),
		ReleaseYear:     derefInt(w.ReleaseYear),
		Scores: game.Scores{
			Metacritic: derefFloat(w.Metacritic),
			IGN:        rescaleRating(w.Rating),
			TapTap:     0,
		},
		Description:     w.Description,
		RecommendReason: w.RecommendReason,
		VideoURL:        "",
		BuyLinks:        links,
		Tags:            nonNil(w.Tags),
		Developer:       w.Developer,
		Publisher:       w.Publisher,
		Playtime:        w.Playtime,
		Difficulty:      game.DifficultyMedium,
	}
}

// rescaleRating doubles a 0-5 rating onto a 0-10 scale rounded to one
// decimal. A missing or zero rating maps to 0.
func rescaleRating(r *float64) float64 {
	if r == nil || *r == 0 {
		return 0
	}
	return math.Round(*r*2*10) / 10
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
