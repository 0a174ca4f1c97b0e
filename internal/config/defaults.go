package config

import (
	_ "embed"
)

//go:embed defaults/columns.yaml
var defaultColumnsYAML []byte

// Default returns the hard-coded configuration used when no YAML is available.
func Default() Config {
	return Config{
		Layout: LayoutConfig{
			Target:      Vec2{40, 40},
			CellSize:    Vec2{32, 32},
			CellPadding: Vec2{2, 2},
			CharSize:    Vec2{16, 16},
			Window: WindowConfig{
				Left:   0,
				Top:    560,
				Right:  400,
				Bottom: 0,
			},
		},
		Game: GameConfig{
			BoardWidth:       6,
			BoardHeight:      13,
			DropInterval:     30, // 0.5s at 60fps
			MinDropInterval:  4,
			FlashTicks:       18,
			FadeTicks:        24,
			WaveStagger:      2,
			PreviewFadeTicks: 20,
			PointsPerJewel:   10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
		Terminal: TerminalConfig{
			CellWidth:  16,
			CellHeight: 34,
		},
		Palette: map[string]string{},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultColumnsYAML
}
