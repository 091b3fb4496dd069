// Package filter derives the subset of a game collection that matches a set
// of facet selections.
//
// Each facet (genre, device, difficulty) is either Unconstrained or
// ConstrainedTo a set of values. Within a facet the values are OR'ed; the
// facets are AND'ed together. An Unconstrained facet matches every game.
package filter

import (
	"net/url"
	"strings"

	"github.com/albapepper/ziyou/internal/game"
)

// Facet is the selection state of one filterable attribute.
type Facet struct {
	constrained bool
	values      []string
}

// Unconstrained returns a facet that imposes no constraint.
func Unconstrained() Facet {
	return Facet{}
}

// ConstrainedTo returns a facet matching games tagged with any of values.
// Duplicates and blanks are dropped. With no usable values the result is
// Unconstrained: clearing a facet never turns it into "match nothing".
func ConstrainedTo(values ...string) Facet {
	f := Facet{}
	for _, v := range values {
		if v == "" || f.Contains(v) {
			continue
		}
		f.values = append(f.values, v)
	}
	f.constrained = len(f.values) > 0
	return f
}

// Constrained reports whether the facet restricts results.
func (f Facet) Constrained() bool {
	return f.constrained
}

// Values returns the selected values in selection order.
func (f Facet) Values() []string {
	out := make([]string, len(f.values))
	copy(out, f.values)
	return out
}

// Contains reports whether v is selected.
func (f Facet) Contains(v string) bool {
	for _, s := range f.values {
		if s == v {
			return true
		}
	}
	return false
}

// Toggle selects v if absent and deselects it if present.
func (f Facet) Toggle(v string) Facet {
	if f.Contains(v) {
		rest := make([]string, 0, len(f.values))
		for _, s := range f.values {
			if s != v {
				rest = append(rest, s)
			}
		}
		return ConstrainedTo(rest...)
	}
	return ConstrainedTo(append(f.Values(), v)...)
}

// Matches reports whether tags satisfy the facet.
func (f Facet) Matches(tags []string) bool {
	if !f.constrained {
		return true
	}
	for _, t := range tags {
		if f.Contains(t) {
			return true
		}
	}
	return false
}

// Selection is the filter state across all three facets. The zero value is
// fully unconstrained.
type Selection struct {
	Genres       Facet
	Devices      Facet
	Difficulties Facet
}

// Empty reports whether no facet is constrained.
func (s Selection) Empty() bool {
	return !s.Genres.Constrained() && !s.Devices.Constrained() && !s.Difficulties.Constrained()
}

// Match reports whether g passes every constrained facet.
func (s Selection) Match(g game.Game) bool {
	return s.Genres.Matches(g.Genres) &&
		s.Devices.Matches(g.Devices) &&
		s.Difficulties.Matches([]string{string(g.Difficulty)})
}

// ToggleGenre returns s with v added to or removed from the genre facet.
func (s Selection) ToggleGenre(v string) Selection {
	s.Genres = s.Genres.Toggle(v)
	return s
}

// ToggleDevice returns s with v added to or removed from the device facet.
func (s Selection) ToggleDevice(v string) Selection {
	s.Devices = s.Devices.Toggle(v)
	return s
}

// ToggleDifficulty returns s with d added to or removed from the difficulty
// facet.
func (s Selection) ToggleDifficulty(d game.Difficulty) Selection {
	s.Difficulties = s.Difficulties.Toggle(string(d))
	return s
}

// Apply returns the games that match sel, in input order. The input slice is
// not modified.
func Apply(games []game.Game, sel Selection) []game.Game {
	out := make([]game.Game, 0, len(games))
	for _, g := range games {
		if sel.Match(g) {
			out = append(out, g)
		}
	}
	return out
}

// Query parameter names used by ParseSelection and Selection.Query.
const (
	ParamGenres     = "genres"
	ParamDevices    = "devices"
	ParamDifficulty = "difficulty"
)

// ParseSelection reads comma-separated facet values from query parameters.
// Repeated parameters are merged.
func ParseSelection(q url.Values) Selection {
	return Selection{
		Genres:       ConstrainedTo(splitParam(q[ParamGenres])...),
		Devices:      ConstrainedTo(splitParam(q[ParamDevices])...),
		Difficulties: ConstrainedTo(splitParam(q[ParamDifficulty])...),
	}
}

// Query renders the selection back into query parameters.
func (s Selection) Query() url.Values {
	q := url.Values{}
	if s.Genres.Constrained() {
		q.Set(ParamGenres, strings.Join(s.Genres.values, ","))
	}
	if s.Devices.Constrained() {
		q.Set(ParamDevices, strings.Join(s.Devices.values, ","))
	}
	if s.Difficulties.Constrained() {
		q.Set(ParamDifficulty, strings.Join(s.Difficulties.values, ","))
	}
	return q
}

func splitParam(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, p := range strings.Split(r, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
