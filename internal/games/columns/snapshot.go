package columns

// Snapshot captures the complete game state for determinism testing and replay.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick         uint64
	Mode         int // 0=Wave, 1=Classic
	Phase        string
	PhaseTick    int
	Score        int
	Chain        int
	Cleared      int
	DropInterval int

	// Falling column: X, Y, then three jewels bottom first
	Falling [5]int
	// Next column jewels, bottom first
	Next [3]int

	// Board rows, top row first, '.' for empty cells
	Board string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Mode:         int(g.mode),
		Phase:        g.phase.String(),
		PhaseTick:    g.phaseTick,
		Score:        g.score,
		Chain:        g.chain,
		Cleared:      g.cleared,
		DropInterval: g.DropInterval(),
		Board:        g.board.String(),
	}

	snap.Falling[0] = g.falling.Position.X
	snap.Falling[1] = g.falling.Position.Y
	for i, j := range g.falling.Jewels {
		snap.Falling[2+i] = int(j)
		snap.Next[i] = int(g.next.Jewels[i])
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PhaseTick)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Chain)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cleared)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DropInterval) //#nosec G115 -- hash computation

	for _, v := range snap.Falling {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Next {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for i := 0; i < len(snap.Phase); i++ {
		h = h*31 + uint64(snap.Phase[i])
	}
	for i := 0; i < len(snap.Board); i++ {
		h = h*31 + uint64(snap.Board[i])
	}

	return h
}
