package render

import "github.com/go-gl/mathgl/mgl32"

var (
	uvMin = mgl32.Vec2{0, 0}
	uvMax = mgl32.Vec2{1, 1}
)

// EmitQuad appends one rectangle at origin with the given size and color.
// Texture coordinates always span the unit square, so the bound texture is
// stretched over the rectangle. Zero or negative sizes produce degenerate or
// flipped geometry; no validation is done.
func EmitQuad(batch *Batch, origin, size mgl32.Vec2, color mgl32.Vec4) {
	EmitQuadUV(batch, origin, size, uvMin, uvMax, color)
}

// EmitQuadUV is EmitQuad with an explicit texture rectangle. uv0 belongs to
// the min corner (origin), uv1 to the max corner (origin+size).
//
// Winding: min, max, (minX, maxY) then min, max, (maxX, minY).
func EmitQuadUV(batch *Batch, origin, size, uv0, uv1 mgl32.Vec2, color mgl32.Vec4) {
	minX, minY := origin[0], origin[1]
	maxX, maxY := origin[0]+size[0], origin[1]+size[1]

	*batch = append(*batch,
		Vertex{Position: mgl32.Vec2{minX, minY}, TexCoord: mgl32.Vec2{uv0[0], uv0[1]}, Color: color},
		Vertex{Position: mgl32.Vec2{maxX, maxY}, TexCoord: mgl32.Vec2{uv1[0], uv1[1]}, Color: color},
		Vertex{Position: mgl32.Vec2{minX, maxY}, TexCoord: mgl32.Vec2{uv0[0], uv1[1]}, Color: color},
		Vertex{Position: mgl32.Vec2{minX, minY}, TexCoord: mgl32.Vec2{uv0[0], uv0[1]}, Color: color},
		Vertex{Position: mgl32.Vec2{maxX, maxY}, TexCoord: mgl32.Vec2{uv1[0], uv1[1]}, Color: color},
		Vertex{Position: mgl32.Vec2{maxX, minY}, TexCoord: mgl32.Vec2{uv1[0], uv0[1]}, Color: color},
	)
}
