package rroguelib

// TextureID is an opaque handle to a single-channel GPU texture owned
// by a Surface.
type TextureID uint32

// Surface is the GPU capability the core consumes: texture storage,
// two draw submissions per frame, and presentation. The viewport size
// is queried live each frame; the core never caches it beyond one
// frame.
type Surface interface {
	// Size returns the current viewport dimensions in physical
	// pixels.
	Size() (width, height int)

	// DPIScale returns the window content scale factor, read live
	// from the windowing layer.
	DPIScale() float32

	// CreateTexture allocates a single-channel coverage texture of
	// the given dimensions with every texel set to fill.
	CreateTexture(width, height int, fill byte) (TextureID, error)

	// WriteTexture writes a sub-rectangle of coverage bytes into a
	// texture.
	WriteTexture(id TextureID, x, y, w, h int, pixels []byte) error

	// DestroyTexture releases a texture.
	DestroyTexture(id TextureID)

	// DrawGrid submits the grid-line mesh, drawn without blending.
	DrawGrid(vertices []GridVertex) error

	// DrawText submits the glyph quad batch sampling the given atlas
	// texture, with coverage-as-alpha blending enabled.
	DrawText(vertices []TextVertex, atlas TextureID) error

	// Present finishes the frame: clears happen at the start of the
	// next BeginFrame.
	Present() error

	// BeginFrame clears the render target to the given color before
	// the frame's draw submissions.
	BeginFrame(clear Color)
}
