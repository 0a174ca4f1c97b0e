package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/columns/internal/board"
)

// TextRenderer appends glyph quads for a byte string. The renderer only
// supplies text and anchors, never glyph geometry.
type TextRenderer interface {
	PushTextVertices(batch *Batch, text []byte, anchor, glyphSize mgl32.Vec2, color mgl32.Vec4)
}

// Context carries everything a frame needs besides the game snapshot: the
// device and shader to draw with, the text collaborator, the layout, and the
// border batch, which is built once and never rebuilt per frame.
type Context struct {
	Device  Device
	Shader  Shader
	Charset TextRenderer

	Layout     Layout
	WindowRect Rect
	CharSize   mgl32.Vec2

	BorderVertices Batch
}

// NewContext builds a context for a boardW×boardH well and tessellates its border.
func NewContext(dev Device, charset TextRenderer, l Layout, window Rect, charSize mgl32.Vec2, boardW, boardH int) *Context {
	return &Context{
		Device:         dev,
		Shader:         ShaderTexturedColored,
		Charset:        charset,
		Layout:         l,
		WindowRect:     window,
		CharSize:       charSize,
		BorderVertices: BuildBorder(l, boardW, boardH),
	}
}

// Frame is the per-frame snapshot of everything visible.
type Frame struct {
	// Board is the settled jewels; nil draws no board.
	Board *board.Board
	// Falling is drawn on the board grid after the settled jewels.
	Falling *board.Column
	// Next is the preview column, drawn with the padding-free transform.
	Next *board.Column
	// NextAlpha is the alpha of every preview jewel.
	NextAlpha float32
	// Policy colors the settled jewels; nil means Plain.
	Policy CellPolicy

	Score     uint64
	HighScore uint64
}

// Renderer builds and dispatches frames. Its two batches are scratch space:
// they are emptied at the start of every frame.
type Renderer struct {
	boardVertices   Batch
	charsetVertices Batch
}

// NewRenderer returns a renderer with empty batches.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Build fills the board and charset batches for f and returns them. The
// returned slices are only valid until the next call.
func (r *Renderer) Build(ctx *Context, f Frame) (boardVertices, charsetVertices Batch) {
	r.boardVertices.Reset()
	r.charsetVertices.Reset()

	if f.Next != nil {
		EmitPiece(&r.boardVertices, *f.Next, ctx.Layout, f.NextAlpha)
	}
	if f.Board != nil {
		TessellateBoard(&r.boardVertices, f.Board, f.Falling, f.Policy, ctx.Layout)
	}

	for _, s := range ScoreDisplayStrings(f.Score, f.HighScore, ctx.WindowRect, ctx.CharSize) {
		ctx.Charset.PushTextVertices(&r.charsetVertices, s.Text, s.Anchor, ctx.CharSize, White)
	}

	return r.boardVertices, r.charsetVertices
}

// Draw builds f and issues the three draw calls in layering order: board,
// then border, then text. Calls are made even when a batch is empty.
func (r *Renderer) Draw(ctx *Context, f Frame) {
	boardVertices, charsetVertices := r.Build(ctx, f)

	ctx.Device.DrawTexturedColoredQuads(boardVertices, ctx.Shader, TexturePillar)
	ctx.Device.DrawTexturedColoredQuads(ctx.BorderVertices, ctx.Shader, TextureBlock)
	ctx.Device.DrawTexturedColoredQuads(charsetVertices, ctx.Shader, TextureCharset)
}

// DrawGame draws a single frame with fresh batches.
func DrawGame(ctx *Context, f Frame) {
	NewRenderer().Draw(ctx, f)
}

// Clear clears the device's color buffer.
func Clear(dev Device) {
	dev.Clear()
}
