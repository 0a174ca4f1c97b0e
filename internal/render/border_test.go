package render

import (
	"testing"

	"github.com/vovakirdan/columns/internal/core"
)

func TestBuildBorder(t *testing.T) {
	l := testLayout()
	batch := BuildBorder(l, 6, 13)

	// two walls of h+1 blocks plus a floor of w blocks
	if batch.QuadCount() != 2*14+6 {
		t.Fatalf("QuadCount() = %d, expected %d", batch.QuadCount(), 2*14+6)
	}

	origins := make(map[core.Coord]bool)
	for i := 0; i < batch.QuadCount(); i++ {
		q := batch.Quad(i)
		if q[0].Color != BorderColor {
			t.Errorf("quad %d color = %v, expected border color", i, q[0].Color)
		}
		for _, c := range []core.Coord{core.C(-1, -1), core.C(6, -1), core.C(-1, 12), core.C(6, 12), core.C(0, -1), core.C(5, -1)} {
			if q[0].Position == l.CellOrigin(c) {
				origins[c] = true
			}
		}
	}

	for _, c := range []core.Coord{core.C(-1, -1), core.C(6, -1), core.C(-1, 12), core.C(6, 12), core.C(0, -1), core.C(5, -1)} {
		if !origins[c] {
			t.Errorf("missing border block at %v", c)
		}
	}
}

func TestBuildBorderLeavesWellOpen(t *testing.T) {
	l := testLayout()
	batch := BuildBorder(l, 3, 4)

	inside := l.CellOrigin(core.C(1, 1))
	for i := 0; i < batch.QuadCount(); i++ {
		if batch.Quad(i)[0].Position == inside {
			t.Errorf("border covers well cell (1, 1)")
		}
	}
}
