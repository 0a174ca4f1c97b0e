package columns

import (
	"testing"

	"github.com/vovakirdan/columns/internal/board"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/render"
)

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		expected []core.Coord
	}{
		{
			name:     "none",
			rows:     []string{"RRG", "GBR"},
			expected: nil,
		},
		{
			name:     "horizontal",
			rows:     []string{"...", "RRR"},
			expected: []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		},
		{
			name:     "vertical",
			rows:     []string{"B..", "B..", "B.."},
			expected: []core.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
		},
		{
			name:     "diagonal",
			rows:     []string{"..Y", ".YR", "YRG"},
			expected: []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
		},
		{
			name:     "anti-diagonal",
			rows:     []string{"P..", "GP.", "RGP"},
			expected: []core.Coord{{X: 0, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 0}},
		},
		{
			name:     "run of four",
			rows:     []string{"OOOO"},
			expected: []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
		},
		{
			name: "crossing runs share a cell",
			rows: []string{".G.", ".G.", "GGG"},
			expected: []core.Coord{
				{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 0},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindMatches(board.Parse(tc.rows...)).Cells()
			if len(got) != len(tc.expected) {
				t.Fatalf("FindMatches() = %v, expected %v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("FindMatches()[%d] = %v, expected %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestClearMatches(t *testing.T) {
	b := board.Parse("G..", "RRR")
	n := ClearMatches(b, FindMatches(b))
	if n != 3 {
		t.Errorf("ClearMatches() = %d, expected 3", n)
	}
	if b.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", b.Count())
	}

	if n := ClearMatches(b, render.NewMatchSet(core.C(2, 2))); n != 0 {
		t.Errorf("clearing an empty cell = %d, expected 0", n)
	}
}

func TestFadeFraction(t *testing.T) {
	tests := []struct {
		elapsed, ticks int
		expected       float32
	}{
		{-5, 10, 1},
		{0, 10, 1},
		{5, 10, 0.5},
		{10, 10, 0},
		{50, 10, 0},
		{3, 0, 0},
	}

	for _, tc := range tests {
		if got := fadeFraction(tc.elapsed, tc.ticks); got != tc.expected {
			t.Errorf("fadeFraction(%d, %d) = %v, expected %v", tc.elapsed, tc.ticks, got, tc.expected)
		}
	}
}

func TestFadeWave(t *testing.T) {
	matches := render.NewMatchSet(core.C(1, 0), core.C(2, 0), core.C(3, 0))

	table := FadeWave(matches, 4, 8, 2)
	expected := []float32{0.5, 0.75, 1}
	if len(table) != 3 {
		t.Fatalf("len = %d, expected 3", len(table))
	}
	for i, e := range table {
		if e.Fraction != expected[i] {
			t.Errorf("entry %d (%v) fraction = %v, expected %v", i, e.Cell, e.Fraction, expected[i])
		}
	}

	if d := FadeWaveDuration(matches, 8, 2); d != 12 {
		t.Errorf("FadeWaveDuration() = %d, expected 12", d)
	}
	for _, e := range FadeWave(matches, 12, 8, 2) {
		if e.Fraction != 0 {
			t.Errorf("%v fraction at end = %v, expected 0", e.Cell, e.Fraction)
		}
	}

	if FadeWave(nil, 0, 8, 2) != nil || FadeWaveDuration(nil, 8, 2) != 0 {
		t.Error("empty match set should produce no wave")
	}
}
