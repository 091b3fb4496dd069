// Package profile models the player profile built up across the five survey
// steps, and the per-step predicates that gate advancing through them.
package profile

import (
	"strconv"
	"strings"
)

// Experience levels.
const (
	ExperienceBeginner = "beginner"
	ExperienceCasual   = "casual"
	ExperienceModerate = "moderate"
	ExperienceHardcore = "hardcore"
)

// Age preferences.
const (
	AgeClassic = "classic"
	AgeNew     = "new"
	AgeBoth    = "both"
)

var (
	ExperienceLevels = []string{ExperienceBeginner, ExperienceCasual, ExperienceModerate, ExperienceHardcore}
	Purposes         = []string{"competitive", "relaxing", "story", "social", "creative"}
	AgePreferences   = []string{AgeClassic, AgeNew, AgeBoth}
)

const (
	// Steps is the number of survey steps.
	Steps = 5

	MinWeeklyHours = 1
	// MaxWeeklyHours is displayed as "40+".
	MaxWeeklyHours = 40

	MaxFavoriteGames = 5
)

// Profile is the survey answer aggregate. Field names are the internal
// (camelCase) names; the gateway owns the mapping to its wire names.
type Profile struct {
	ExperienceLevel     string   `json:"experienceLevel" validate:"required,oneof=beginner casual moderate hardcore"`
	WeeklyHours         int      `json:"weeklyHours" validate:"min=1,max=40"`
	Purposes            []string `json:"purposes" validate:"min=1,unique,dive,oneof=competitive relaxing story social creative"`
	GenrePreferences    []string `json:"genrePreferences" validate:"min=1,unique,dive,oneof=action rpg shooter strategy simulation adventure sports puzzle racing horror rhythm roguelike"`
	Devices             []string `json:"devices" validate:"min=1,unique,dive,oneof=phone tablet pc handheld console"`
	PlatformPreferences []string `json:"platformPreferences" validate:"unique,dive,oneof=steam epic psstore eshop appstore googleplay xbox"`
	AgePreference       string   `json:"agePreference" validate:"required,oneof=classic new both"`
	FavoriteGames       []string `json:"favoriteGames" validate:"max=5,unique,dive,required"`
}

// New returns the profile a fresh survey starts from.
func New() Profile {
	return Profile{
		ExperienceLevel:     ExperienceCasual,
		WeeklyHours:         10,
		Purposes:            []string{},
		GenrePreferences:    []string{},
		Devices:             []string{},
		PlatformPreferences: []string{},
		AgePreference:       AgeBoth,
		FavoriteGames:       []string{},
	}
}

// CanProceed reports whether the answers for step (0-based) allow moving on.
// It only looks at the slice of the profile that step edits.
func (p Profile) CanProceed(step int) bool {
	switch step {
	case 0:
		return p.ExperienceLevel != ""
	case 1:
		return len(p.Purposes) > 0
	case 2:
		return len(p.GenrePreferences) > 0
	case 3:
		return len(p.Devices) > 0
	case 4:
		return true
	default:
		return false
	}
}

// SetWeeklyHours clamps h into [MinWeeklyHours, MaxWeeklyHours].
func (p *Profile) SetWeeklyHours(h int) {
	switch {
	case h < MinWeeklyHours:
		h = MinWeeklyHours
	case h > MaxWeeklyHours:
		h = MaxWeeklyHours
	}
	p.WeeklyHours = h
}

// WeeklyHoursLabel renders the slider value, with the top bucket as "40+".
func (p Profile) WeeklyHoursLabel() string {
	if p.WeeklyHours >= MaxWeeklyHours {
		return "40+"
	}
	return strconv.Itoa(p.WeeklyHours)
}

func (p *Profile) TogglePurpose(v string)    { p.Purposes = toggle(p.Purposes, v) }
func (p *Profile) ToggleGenre(v string)      { p.GenrePreferences = toggle(p.GenrePreferences, v) }
func (p *Profile) ToggleDevice(v string)     { p.Devices = toggle(p.Devices, v) }
func (p *Profile) TogglePlatform(v string)   { p.PlatformPreferences = toggle(p.PlatformPreferences, v) }
func (p *Profile) SetExperience(v string)    { p.ExperienceLevel = v }
func (p *Profile) SetAgePreference(v string) { p.AgePreference = v }

// AddFavoriteGame appends a trimmed name. Blank names, duplicates (exact,
// case-sensitive) and additions past MaxFavoriteGames are ignored; the
// return value reports whether the list changed.
func (p *Profile) AddFavoriteGame(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || len(p.FavoriteGames) >= MaxFavoriteGames {
		return false
	}
	for _, g := range p.FavoriteGames {
		if g == name {
			return false
		}
	}
	p.FavoriteGames = append(p.FavoriteGames, name)
	return true
}

// RemoveFavoriteGame drops name from the list if present.
func (p *Profile) RemoveFavoriteGame(name string) {
	out := make([]string, 0, len(p.FavoriteGames))
	for _, g := range p.FavoriteGames {
		if g != name {
			out = append(out, g)
		}
	}
	p.FavoriteGames = out
}

func toggle(list []string, v string) []string {
	out := make([]string, 0, len(list)+1)
	found := false
	for _, s := range list {
		if s == v {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, v)
	}
	return out
}
