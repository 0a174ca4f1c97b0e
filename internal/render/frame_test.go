package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/columns/internal/board"
	"github.com/vovakirdan/columns/internal/core"
)

// fakeText emits one quad per byte and remembers what it was asked to draw.
type fakeText struct {
	texts   []string
	anchors []mgl32.Vec2
}

func (f *fakeText) PushTextVertices(batch *Batch, text []byte, anchor, glyphSize mgl32.Vec2, color mgl32.Vec4) {
	f.texts = append(f.texts, string(text))
	f.anchors = append(f.anchors, anchor)
	for i := range text {
		EmitQuad(batch, mgl32.Vec2{anchor[0] + float32(i)*glyphSize[0], anchor[1]}, glyphSize, color)
	}
}

func testContext(rec *Recorder, text *fakeText) *Context {
	return NewContext(rec, text, testLayout(), Rect{Left: 0, Top: 560, Right: 400, Bottom: 0}, mgl32.Vec2{16, 16}, 6, 13)
}

func TestDrawEmptyFrame(t *testing.T) {
	rec := &Recorder{}
	text := &fakeText{}
	ctx := testContext(rec, text)

	NewRenderer().Draw(ctx, Frame{})

	expected := []Texture{TexturePillar, TextureBlock, TextureCharset}
	got := rec.Textures()
	if len(got) != len(expected) {
		t.Fatalf("draw calls = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("call %d texture = %v, expected %v", i, got[i], expected[i])
		}
		if rec.Calls[i].Shader != ShaderTexturedColored {
			t.Errorf("call %d shader = %v, expected textured colored", i, rec.Calls[i].Shader)
		}
	}

	if rec.Calls[0].Vertices.Len() != 0 {
		t.Errorf("board batch Len() = %d, expected 0", rec.Calls[0].Vertices.Len())
	}
	if rec.Calls[1].Vertices.Len() != ctx.BorderVertices.Len() {
		t.Errorf("border batch Len() = %d, expected %d", rec.Calls[1].Vertices.Len(), ctx.BorderVertices.Len())
	}
	if rec.Clears != 0 {
		t.Errorf("Draw should not clear, Clears = %d", rec.Clears)
	}
}

func TestDrawTextOrder(t *testing.T) {
	rec := &Recorder{}
	text := &fakeText{}
	ctx := testContext(rec, text)

	NewRenderer().Draw(ctx, Frame{Score: 42, HighScore: 1234567})

	if len(text.texts) != 2 || text.texts[0] != "1234567" || text.texts[1] != "000042" {
		t.Fatalf("texts = %q, expected [1234567 000042]", text.texts)
	}
	if text.anchors[0] != (mgl32.Vec2{208, 536}) || text.anchors[1] != (mgl32.Vec2{48, 536}) {
		t.Errorf("anchors = %v", text.anchors)
	}
	if n := rec.Calls[2].Vertices.QuadCount(); n != 13 {
		t.Errorf("charset QuadCount() = %d, expected 13", n)
	}
}

func TestDrawPreviewBeforeBoard(t *testing.T) {
	rec := &Recorder{}
	ctx := testContext(rec, &fakeText{})

	b := board.New(6, 13)
	b.Set(core.C(0, 0), board.JewelGreen)
	next := board.Column{
		Position: core.C(7, 10),
		Jewels:   [3]board.Jewel{board.JewelRed, board.JewelRed, board.JewelRed},
	}
	falling := board.Column{
		Position: core.C(2, 10),
		Jewels:   [3]board.Jewel{board.JewelBlue, board.JewelBlue, board.JewelBlue},
	}

	NewRenderer().Draw(ctx, Frame{Board: b, Falling: &falling, Next: &next, NextAlpha: 0.5})

	vertices := rec.Calls[0].Vertices
	if vertices.QuadCount() != 3+1+3 {
		t.Fatalf("board QuadCount() = %d, expected 7", vertices.QuadCount())
	}

	if got := vertices.Quad(0)[0].Position; got != ctx.Layout.PieceOrigin(next.Position) {
		t.Errorf("first quad = %v, expected preview at %v", got, ctx.Layout.PieceOrigin(next.Position))
	}
	if got := vertices.Quad(0)[0].Color[3]; got != 0.5 {
		t.Errorf("preview alpha = %v, expected 0.5", got)
	}
	if got := vertices.Quad(3)[0].Color; got != board.JewelGreen.Color() {
		t.Errorf("fourth quad color = %v, expected settled green", got)
	}
	if got := vertices.Quad(4)[0].Position; got != ctx.Layout.CellOrigin(falling.Position) {
		t.Errorf("falling quad = %v, expected %v", got, ctx.Layout.CellOrigin(falling.Position))
	}
}

func TestRendererRebuildsEachFrame(t *testing.T) {
	rec := &Recorder{}
	ctx := testContext(rec, &fakeText{})
	r := NewRenderer()

	b := board.New(6, 13)
	b.Set(core.C(1, 1), board.JewelBlue)
	r.Draw(ctx, Frame{Board: b})
	r.Draw(ctx, Frame{})

	if n := rec.Calls[0].Vertices.QuadCount(); n != 1 {
		t.Errorf("first frame QuadCount() = %d, expected 1", n)
	}
	if n := rec.Calls[3].Vertices.Len(); n != 0 {
		t.Errorf("second frame Len() = %d, expected 0", n)
	}
}

func TestClear(t *testing.T) {
	rec := &Recorder{}
	Clear(rec)
	Clear(rec)
	if rec.Clears != 2 {
		t.Errorf("Clears = %d, expected 2", rec.Clears)
	}
	if len(rec.Calls) != 0 {
		t.Errorf("Clear should not draw, Calls = %d", len(rec.Calls))
	}

	rec.Reset()
	if rec.Clears != 0 {
		t.Errorf("Clears after Reset = %d, expected 0", rec.Clears)
	}
}
