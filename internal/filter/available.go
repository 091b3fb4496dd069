package filter

import "github.com/albapepper/ziyou/internal/game"

// Options lists the facet values that occur at least once in a collection.
// Only these are offered as filter chips.
type Options struct {
	Genres       []string `json:"genres"`
	Devices      []string `json:"devices"`
	Difficulties []string `json:"difficulties"`
}

// Available computes Options for games. Values come out in the canonical
// vocabulary order; tags outside the known vocabulary are not offered.
func Available(games []game.Game) Options {
	genres := map[string]bool{}
	devices := map[string]bool{}
	diffs := map[string]bool{}
	for _, g := range games {
		for _, v := range g.Genres {
			genres[v] = true
		}
		for _, v := range g.Devices {
			devices[v] = true
		}
		diffs[string(g.Difficulty)] = true
	}

	opts := Options{Genres: []string{}, Devices: []string{}, Difficulties: []string{}}
	for _, v := range game.Genres {
		if genres[v] {
			opts.Genres = append(opts.Genres, v)
		}
	}
	for _, v := range game.Devices {
		if devices[v] {
			opts.Devices = append(opts.Devices, v)
		}
	}
	for _, d := range game.Difficulties {
		if diffs[string(d)] {
			opts.Difficulties = append(opts.Difficulties, string(d))
		}
	}
	return opts
}
