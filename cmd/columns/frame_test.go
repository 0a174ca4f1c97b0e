package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/columns/internal/config"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/render"
	"github.com/vovakirdan/columns/internal/render/charset"
)

func setupTest(t *testing.T) {
	t.Helper()
	logger = log.New(io.Discard)
	appConfig = config.Default()
}

func recordGame(t *testing.T, seed int64, ticks int) frameDump {
	t.Helper()
	game, err := gameArg(nil)
	if err != nil {
		t.Fatalf("gameArg() error = %v", err)
	}
	simulate(game, core.RuntimeConfig{TickRate: 60, Seed: seed}, ticks, true)

	rec := &render.Recorder{}
	ctx, err := appConfig.RenderContext(rec, charset.New())
	if err != nil {
		t.Fatalf("RenderContext() error = %v", err)
	}
	render.NewRenderer().Draw(ctx, game.Frame())
	return dumpFrame(game, rec, true)
}

func TestFrameDeterministic(t *testing.T) {
	setupTest(t)

	a := recordGame(t, 42, 400)
	b := recordGame(t, 42, 400)

	if a.Hash != b.Hash {
		t.Errorf("hash differs between runs: %x vs %x", a.Hash, b.Hash)
	}
	if len(a.Calls) != 3 {
		t.Fatalf("recorded %d calls, expected 3", len(a.Calls))
	}

	expected := []string{"pillar", "block", "charset"}
	for i, c := range a.Calls {
		if c.Texture != expected[i] {
			t.Errorf("call %d texture = %s, expected %s", i, c.Texture, expected[i])
		}
		if len(c.Vertices) != c.Quads*render.VerticesPerQuad {
			t.Errorf("call %d has %d vertices for %d quads", i, len(c.Vertices), c.Quads)
		}
	}
	// Two six-digit HUD strings
	if a.Calls[2].Quads != 12 {
		t.Errorf("charset quads = %d, expected 12", a.Calls[2].Quads)
	}
}

func TestGameArg(t *testing.T) {
	setupTest(t)

	if _, err := gameArg([]string{"columns_classic"}); err != nil {
		t.Errorf("gameArg(columns_classic) error = %v", err)
	}
	if _, err := gameArg([]string{"tetris"}); err == nil {
		t.Error("gameArg(tetris) should fail")
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, frameDump{
		Game:  "columns",
		Calls: []callDump{{Texture: "pillar", Quads: 3}},
	})

	out := buf.String()
	if !strings.Contains(out, "pillar") || !strings.Contains(out, "18 vertices") {
		t.Errorf("printSummary() = %q", out)
	}
}

func TestPrintASCII(t *testing.T) {
	setupTest(t)
	game, err := gameArg(nil)
	if err != nil {
		t.Fatal(err)
	}
	game.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	var buf bytes.Buffer
	if err := printASCII(&buf, game); err != nil {
		t.Fatalf("printASCII() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 17 {
		t.Errorf("printASCII() printed %d lines, expected 17", len(lines))
	}
	if !strings.Contains(lines[0], "000000") {
		t.Errorf("first line = %q, expected the HUD", lines[0])
	}
}
