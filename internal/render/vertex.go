// Package render turns a game snapshot into flat vertex batches of textured,
// colored quads and dispatches them as one draw call per texture.
//
// Everything here is a pure function of its arguments: batches are rebuilt
// from empty every frame and nothing is cached between frames.
package render

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one corner of a textured, colored triangle.
type Vertex struct {
	Position mgl32.Vec2
	TexCoord mgl32.Vec2
	Color    mgl32.Vec4
}

// VerticesPerQuad is the number of vertices emitted for one rectangle
// (two triangles, no index buffer).
const VerticesPerQuad = 6

// Batch is an append-only list of vertices destined for a single draw call.
// Every six vertices form one quad.
type Batch []Vertex

// Len returns the number of vertices in the batch.
func (b Batch) Len() int {
	return len(b)
}

// QuadCount returns the number of complete quads in the batch.
func (b Batch) QuadCount() int {
	return len(b) / VerticesPerQuad
}

// Quad returns the six vertices of the i-th quad.
func (b Batch) Quad(i int) Batch {
	return b[i*VerticesPerQuad : (i+1)*VerticesPerQuad]
}

// Reset truncates the batch to zero length, keeping its capacity.
func (b *Batch) Reset() {
	*b = (*b)[:0]
}

// Common colors.
var (
	White = mgl32.Vec4{1, 1, 1, 1}

	// fadeGray is the neutral color matched jewels blend toward while fading.
	fadeGray = mgl32.Vec3{0.8, 0.8, 0.8}

	// BorderColor tints the block texture of the well outline.
	BorderColor = mgl32.Vec4{0.55, 0.55, 0.65, 1}
)
