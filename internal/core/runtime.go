package core

import "time"

// RuntimeConfig carries the per-session settings a front end hands to a
// game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns, 0 outside a terminal
	ScreenH  int   // terminal rows, 0 outside a terminal
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 asks for a clock-based seed
}

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// Seeded returns rc with a clock-based seed when Seed is 0 and the default
// tick rate when TickRate is not positive.
func (rc RuntimeConfig) Seeded() RuntimeConfig {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = DefaultTickRate
	}
	return rc
}

// GameState is the part of a game the front ends react to.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by every simulation tick.
type StepResult struct {
	State GameState
	// Cleared is the number of jewels removed during this tick.
	Cleared int
}
