package render

// Texture names one of the three textures a frame draws with.
type Texture uint8

const (
	// TexturePillar is the jewel tile texture used by the board batch.
	TexturePillar Texture = iota
	// TextureBlock is the wall texture used by the border batch.
	TextureBlock
	// TextureCharset is the glyph atlas used by the HUD text batch.
	TextureCharset
)

// String returns the texture name.
func (t Texture) String() string {
	switch t {
	case TexturePillar:
		return "pillar"
	case TextureBlock:
		return "block"
	case TextureCharset:
		return "charset"
	default:
		return "unknown"
	}
}

// Shader names a shader program understood by a Device.
type Shader uint8

const (
	// ShaderTexturedColored samples the texture and multiplies by the vertex color.
	ShaderTexturedColored Shader = iota
)

// Device is the draw-call boundary. Implementations own all GPU (or
// terminal) state; the renderer only hands them batches in order.
type Device interface {
	// Clear clears the color buffer.
	Clear()
	// DrawTexturedColoredQuads uploads vertices and draws them as triangles
	// with the given shader and texture bound.
	DrawTexturedColoredQuads(vertices Batch, shader Shader, texture Texture)
}

// DrawCall is one recorded DrawTexturedColoredQuads invocation.
type DrawCall struct {
	Shader   Shader
	Texture  Texture
	Vertices Batch
}

// Recorder is a Device that remembers every call. Vertices are copied so
// callers may reuse their batches.
type Recorder struct {
	Calls  []DrawCall
	Clears int
}

// Clear implements Device.
func (r *Recorder) Clear() {
	r.Clears++
}

// DrawTexturedColoredQuads implements Device.
func (r *Recorder) DrawTexturedColoredQuads(vertices Batch, shader Shader, texture Texture) {
	r.Calls = append(r.Calls, DrawCall{
		Shader:   shader,
		Texture:  texture,
		Vertices: append(Batch(nil), vertices...),
	})
}

// Textures returns the texture of every recorded call, in order.
func (r *Recorder) Textures() []Texture {
	out := make([]Texture, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Texture
	}
	return out
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Clears = 0
}
