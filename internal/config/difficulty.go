package config

import "math"

// Progress is what a game has achieved so far; difficulty grows with it.
type Progress struct {
	Score   int
	Ticks   int
	Cleared int // jewels removed
}

// DifficultyManager turns game progress into a difficulty level and a
// gravity speed.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64
}

// NewDifficultyManager creates a manager starting at cfg.InitialLevel.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: unit(cfg.InitialLevel)}
}

// measure picks the progress value the configured progression tracks.
// It returns -1 for "none" and unknown types.
func (d *DifficultyManager) measure(p Progress) int {
	switch d.cfg.Progression.Type {
	case "score":
		return p.Score
	case "time":
		return p.Ticks
	case "jewels":
		return p.Cleared
	}
	return -1
}

// Level returns the difficulty in [0, 1]. It rises linearly from the
// initial level and reaches 1 at Progression.MaxAt.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.cfg.Enabled {
		return d.base
	}
	v := d.measure(p)
	if v < 0 {
		return d.base
	}
	maxAt := math.Max(float64(d.cfg.Progression.MaxAt), 1)
	return d.base + unit(float64(v)/maxAt)*(1-d.base)
}

// DropInterval returns the ticks between gravity steps: base at level 0,
// divided by 1+SpeedMultiplier at level 1, never below minimum.
func (d *DifficultyManager) DropInterval(base, minimum int, p Progress) int {
	speed := 1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier
	return max(int(math.Round(float64(base)/speed)), minimum)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
