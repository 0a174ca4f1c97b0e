package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/columns/internal/board"
	"github.com/vovakirdan/columns/internal/render"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}

	def := Default()
	if cfg.Layout != def.Layout {
		t.Errorf("layout = %+v, expected %+v", cfg.Layout, def.Layout)
	}
	if cfg.Game != def.Game {
		t.Errorf("game = %+v, expected %+v", cfg.Game, def.Game)
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("difficulty = %+v, expected %+v", cfg.Difficulty, def.Difficulty)
	}
	if cfg.Terminal != def.Terminal {
		t.Errorf("terminal = %+v, expected %+v", cfg.Terminal, def.Terminal)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("game:\n  board_width: 8\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Game.BoardWidth != 8 {
		t.Errorf("BoardWidth = %d, expected 8", cfg.Game.BoardWidth)
	}
	if cfg.Game.BoardHeight != 13 {
		t.Errorf("BoardHeight = %d, expected default 13", cfg.Game.BoardHeight)
	}
	if cfg.Layout.CellSize != (Vec2{32, 32}) {
		t.Errorf("CellSize = %v, expected default", cfg.Layout.CellSize)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"tiny board", "game:\n  board_width: 2\n"},
		{"zero drop", "game:\n  drop_interval: 0\n"},
		{"negative fade", "game:\n  fade_ticks: -1\n"},
		{"zero terminal cell", "terminal:\n  cell_width: 0\n"},
		{"inverted window", "layout:\n  window: {left: 0, top: 0, right: 400, bottom: 560}\n"},
		{"not yaml", "game: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Errorf("Parse(%q) should fail", tc.yaml)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	if err := os.WriteFile(path, []byte("game:\n  points_per_jewel: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.Game.PointsPerJewel != 25 {
		t.Errorf("PointsPerJewel = %d, expected 25", cfg.Game.PointsPerJewel)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		dropInterval int
	}{
		{DifficultyEasy, true, 0.0, 40},
		{DifficultyNormal, true, 0.3, 30},
		{DifficultyHard, true, 0.7, 20},
		{DifficultyFixed, false, 0.0, 30},
		{"", true, 0.0, 30},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Game.DropInterval != tc.dropInterval {
				t.Errorf("DropInterval = %d, expected %d", cfg.Game.DropInterval, tc.dropInterval)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset(""); !ok {
		t.Error("empty preset should be accepted")
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func TestTerminalGrid(t *testing.T) {
	cfg := Default()
	if cols := cfg.Terminal.Columns(cfg.Layout.Window); cols != 25 {
		t.Errorf("Columns() = %d, expected 25", cols)
	}
	if rows := cfg.Terminal.Rows(cfg.Layout.Window); rows != 17 {
		t.Errorf("Rows() = %d, expected 17", rows)
	}
}

func TestRenderLayout(t *testing.T) {
	cfg := Default()
	cfg.Palette = map[string]string{"red": "#000000"}

	l, err := cfg.RenderLayout()
	if err != nil {
		t.Fatalf("RenderLayout error: %v", err)
	}
	if l.Target != (mgl32.Vec2{40, 40}) || l.TileSize != (mgl32.Vec2{32, 32}) || l.Padding != (mgl32.Vec2{2, 2}) {
		t.Errorf("layout = %+v", l)
	}
	if l.Palette[board.JewelRed] != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("red = %v, expected black override", l.Palette[board.JewelRed])
	}

	cfg.Palette = map[string]string{"teal": "#00ffff"}
	if _, err := cfg.RenderLayout(); err == nil {
		t.Error("unknown jewel in palette should fail")
	}
}

func TestRenderContext(t *testing.T) {
	cfg := Default()
	ctx, err := cfg.RenderContext(&render.Recorder{}, nil)
	if err != nil {
		t.Fatalf("RenderContext error: %v", err)
	}
	if ctx.WindowRect != (render.Rect{Left: 0, Top: 560, Right: 400, Bottom: 0}) {
		t.Errorf("WindowRect = %+v", ctx.WindowRect)
	}
	// walls of 14 blocks each plus a 6 block floor
	if ctx.BorderVertices.QuadCount() != 34 {
		t.Errorf("border QuadCount() = %d, expected 34", ctx.BorderVertices.QuadCount())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Game != Default().Game {
		t.Errorf("game = %+v, expected %+v", cfg.Game, Default().Game)
	}
}
