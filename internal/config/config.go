// Package config provides YAML-based configuration loading and difficulty
// management for the columns game.
package config

// Config contains all configuration for the columns game.
type Config struct {
	Layout     LayoutConfig      `yaml:"layout"`
	Game       GameConfig        `yaml:"game"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
	Terminal   TerminalConfig    `yaml:"terminal"`
	Palette    map[string]string `yaml:"palette"` // jewel name -> hex color override
}

// Vec2 is an (x, y) pair in logical pixels.
type Vec2 [2]float32

// LayoutConfig places the board and HUD in logical screen space.
// Logical space is y-up with the origin at the bottom-left of the window.
type LayoutConfig struct {
	Target      Vec2         `yaml:"target"`       // origin of cell (0, 0) before padding
	CellSize    Vec2         `yaml:"cell_size"`    // jewel tile size
	CellPadding Vec2         `yaml:"cell_padding"` // gap before every tile
	CharSize    Vec2         `yaml:"char_size"`    // HUD glyph size
	Window      WindowConfig `yaml:"window"`
}

// WindowConfig is the window rectangle in logical pixels. Top > Bottom.
type WindowConfig struct {
	Left   float32 `yaml:"left"`
	Top    float32 `yaml:"top"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
}

// Width returns the window width.
func (w WindowConfig) Width() float32 {
	return w.Right - w.Left
}

// Height returns the window height.
func (w WindowConfig) Height() float32 {
	return w.Top - w.Bottom
}

// GameConfig defines the rules of a columns game.
type GameConfig struct {
	BoardWidth       int `yaml:"board_width"`
	BoardHeight      int `yaml:"board_height"`
	DropInterval     int `yaml:"drop_interval"`      // Ticks per row at the lowest difficulty
	MinDropInterval  int `yaml:"min_drop_interval"`  // Fastest gravity
	FlashTicks       int `yaml:"flash_ticks"`        // Matched jewels shown white
	FadeTicks        int `yaml:"fade_ticks"`         // Matched jewels fading out
	WaveStagger      int `yaml:"wave_stagger"`       // Per-cell fade delay between neighbouring diagonals
	PreviewFadeTicks int `yaml:"preview_fade_ticks"` // Next column fade-in after a spawn
	PointsPerJewel   int `yaml:"points_per_jewel"`
}

// TerminalConfig maps logical pixels onto terminal cells.
type TerminalConfig struct {
	CellWidth  float32 `yaml:"cell_width"`
	CellHeight float32 `yaml:"cell_height"`
}

// Columns returns the number of terminal columns covering the window.
func (t TerminalConfig) Columns(w WindowConfig) int {
	return ceilDiv(w.Width(), t.CellWidth)
}

// Rows returns the number of terminal rows covering the window.
func (t TerminalConfig) Rows(w WindowConfig) int {
	return ceilDiv(w.Height(), t.CellHeight)
}

func ceilDiv(a, b float32) int {
	if b <= 0 {
		return 0
	}
	n := int(a / b)
	if float32(n)*b < a {
		n++
	}
	return n
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "jewels" or "none"
	MaxAt int    `yaml:"max_at"` // Score, ticks or jewels at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to gravity speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string is valid
// and means "keep the configured difficulty".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
