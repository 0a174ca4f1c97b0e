// Package window is the windowed front end built on Ebitengine. Batches are
// drawn with DrawTriangles against one image per logical texture.
//
// Builds tagged headless compile without a display backend; Run then
// returns ErrHeadless.
package window

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/columns/internal/render"
)

// maxChunkVertices bounds one DrawTriangles call so that every index fits in
// a uint16. It is a multiple of six, so quads never straddle two calls.
const maxChunkVertices = 65532

// ErrHeadless is returned by Run in builds without a display backend.
var ErrHeadless = errors.New("window: built without a display backend (headless)")

// Projection maps logical y-up coordinates into the y-down pixel space of
// the window and texture coordinates into texel space.
type Projection struct {
	Window  render.Rect
	TexSize mgl32.Vec2
}

// Dst returns the window pixel position of a logical point.
func (p Projection) Dst(pos mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{pos[0] - p.Window.Left, p.Window.Top - pos[1]}
}

// Src returns the texel position of a texture coordinate. v = 1 is the top
// row of the image.
func (p Projection) Src(uv mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{uv[0] * p.TexSize[0], (1 - uv[1]) * p.TexSize[1]}
}

// chunks splits n vertices into [start, end) ranges of at most
// maxChunkVertices.
func chunks(n int) [][2]int {
	var out [][2]int
	for start := 0; start < n; start += maxChunkVertices {
		out = append(out, [2]int{start, min(start+maxChunkVertices, n)})
	}
	return out
}

// sequentialIndices returns 0..n-1. Vertices are already laid out as
// triangles, so the index buffer is the identity.
func sequentialIndices(dst []uint16, n int) []uint16 {
	dst = dst[:0]
	for i := range n {
		dst = append(dst, uint16(i))
	}
	return dst
}
