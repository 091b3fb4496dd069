package sampler

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/albapepper/ziyou/internal/game"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSampleSizeAndMembership(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, tc := range []struct{ n, count int }{
		{0, 8}, {3, 8}, {8, 8}, {20, 8}, {20, 0}, {5, -1},
	} {
		in := ints(tc.n)
		got := Sample(in, tc.count, rng)

		want := min(max(tc.count, 0), tc.n)
		if len(got) != want {
			t.Errorf("Sample(n=%d, count=%d) len = %d, want %d", tc.n, tc.count, len(got), want)
		}
		seen := map[int]bool{}
		for _, v := range got {
			if v < 0 || v >= tc.n {
				t.Errorf("fabricated element %d", v)
			}
			if seen[v] {
				t.Errorf("duplicate element %d", v)
			}
			seen[v] = true
		}
	}
}

func TestSampleDoesNotMutateInput(t *testing.T) {
	in := ints(10)
	Sample(in, 5, rand.New(rand.NewPCG(7, 7)))
	if !slices.Equal(in, ints(10)) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestSampleIsAPermutation(t *testing.T) {
	got := Sample(ints(12), 12, rand.New(rand.NewPCG(3, 4)))
	slices.Sort(got)
	if !slices.Equal(got, ints(12)) {
		t.Errorf("full-size sample is not a permutation: %v", got)
	}
}

func TestSampleNilSource(t *testing.T) {
	if got := Sample(ints(4), 2, nil); len(got) != 2 {
		t.Errorf("len = %d", len(got))
	}
}

func TestSampleVaries(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	in := ints(20)
	first := Sample(in, 8, rng)
	for i := 0; i < 50; i++ {
		if !slices.Equal(Sample(in, 8, rng), first) {
			return
		}
	}
	t.Error("51 draws of 8 from 20 were identical")
}

func TestSameSourceIsReproducible(t *testing.T) {
	a := Sample(ints(20), 8, rand.New(rand.NewPCG(9, 1)))
	b := Sample(ints(20), 8, rand.New(rand.NewPCG(9, 1)))
	if !slices.Equal(a, b) {
		t.Errorf("same seed and key gave %v and %v", a, b)
	}
}

func TestViewReshuffle(t *testing.T) {
	games := make([]game.Game, 20)
	for i := range games {
		games[i] = game.Game{ID: string(rune('a' + i))}
	}
	v := NewView(0, rand.New(rand.NewPCG(5, 6)))
	first := game.IDs(v.SetSource(games))
	if len(first) != DefaultCount || v.Total() != 20 {
		t.Fatalf("shown %d of %d", len(first), v.Total())
	}

	changed := false
	for i := 0; i < 20; i++ {
		next := game.IDs(v.Reshuffle())
		if len(next) != DefaultCount {
			t.Fatalf("reshuffle len = %d", len(next))
		}
		for _, id := range next {
			if id < "a" || id > "t" {
				t.Fatalf("reshuffle produced foreign id %q", id)
			}
		}
		if !slices.Equal(next, first) {
			changed = true
		}
	}
	if !changed {
		t.Error("reshuffle never changed the sample")
	}
	if v.Key() != 20 {
		t.Errorf("Key() = %d, want 20", v.Key())
	}

	small := v.SetSource(games[:3])
	if len(small) != 3 {
		t.Errorf("small source shown %d", len(small))
	}
}
