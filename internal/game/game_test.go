package game

import "testing"

func TestDifficultyRank(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyEasy, 1},
		{DifficultyMedium, 2},
		{DifficultyHard, 3},
		{DifficultyVeryHard, 4},
		{Difficulty("nightmare"), 0},
	}
	for _, tt := range tests {
		if got := tt.d.Rank(); got != tt.want {
			t.Errorf("%q.Rank() = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestLabelFallsBackToKey(t *testing.T) {
	if got := Label(GenreLabels, "action"); got != "动作" {
		t.Errorf("Label(action) = %q", got)
	}
	if got := Label(GenreLabels, "Indie"); got != "Indie" {
		t.Errorf("Label(Indie) = %q, want key passthrough", got)
	}
	if got := Difficulty("weird").Label(); got != "weird" {
		t.Errorf("unknown difficulty label = %q", got)
	}
}
