// Package sampler picks a random subset of a game collection for display.
//
// Sample is a pure function of its input and random source. Re-rolling is an
// explicit command on View, which owns nothing but the re-roll key and the
// last sample.
package sampler

import (
	"math/rand/v2"

	"github.com/albapepper/ziyou/internal/game"
)

// DefaultCount is how many games the results view shows at once.
const DefaultCount = 8

// Sample returns min(count, len(games)) distinct elements of games in random
// order. It shuffles a copy with Fisher-Yates, walking from the last index
// down to 1 and swapping each position with a uniformly chosen index at or
// before it, then truncates. games is never modified. A nil rng uses the
// process-wide source.
func Sample[T any](games []T, count int, rng *rand.Rand) []T {
	if count < 0 {
		count = 0
	}
	shuffled := make([]T, len(games))
	copy(shuffled, games)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := intN(rng, i+1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return shuffled
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

// View is the sampled window over a filtered collection.
type View struct {
	source []game.Game
	count  int
	key    uint64
	rng    *rand.Rand
	shown  []game.Game
}

// NewView creates a view showing count games (DefaultCount when count <= 0).
// rng may be nil.
func NewView(count int, rng *rand.Rand) *View {
	if count <= 0 {
		count = DefaultCount
	}
	return &View{count: count, rng: rng, shown: []game.Game{}}
}

// SetSource replaces the collection being sampled (typically after a filter
// change) and draws a fresh sample.
func (v *View) SetSource(games []game.Game) []game.Game {
	v.source = games
	v.resample()
	return v.Shown()
}

// Reshuffle is the re-roll command: same source, new draw.
func (v *View) Reshuffle() []game.Game {
	v.key++
	v.resample()
	return v.Shown()
}

// Key is the number of reshuffles since the view was created.
func (v *View) Key() uint64 {
	return v.key
}

// Total is the size of the collection being sampled.
func (v *View) Total() int {
	return len(v.source)
}

// Shown returns the current sample.
func (v *View) Shown() []game.Game {
	out := make([]game.Game, len(v.shown))
	copy(out, v.shown)
	return out
}

func (v *View) resample() {
	v.shown = Sample(v.source, v.count, v.rng)
}
