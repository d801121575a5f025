package rroguelib

// FontHandle is an opaque reference to a parsed font held by a
// Rasterizer. The core never inspects it.
type FontHandle interface{}

// VMetrics are the vertical metrics of a font at a given scale, in
// pixels.
type VMetrics struct {
	Ascent  float32 // distance from baseline to top, positive
	Descent float32 // distance from baseline to bottom, negative or zero
	LineGap float32 // extra space between lines
}

// Bitmap is a rasterized glyph image: single-channel coverage bytes,
// row-major, one byte per pixel.
type Bitmap struct {
	W, H   int
	Pixels []byte
}

// Rasterizer is the font capability the core consumes. Parsing and
// rasterization are delegated entirely; the core only needs advance
// widths, vertical metrics, bounding boxes and coverage bitmaps.
type Rasterizer interface {
	// ParseFont parses a font byte stream. The returned handle is
	// passed back into the other methods.
	ParseFont(data []byte) (FontHandle, error)

	// AdvanceWidth returns the horizontal caret advance for the rune
	// at the given pixel scale.
	AdvanceWidth(h FontHandle, r rune, scale float32) float32

	// VerticalMetrics returns ascent, descent and line gap at the
	// given pixel scale.
	VerticalMetrics(h FontHandle, scale float32) VMetrics

	// PixelBounds returns the tight pixel bounding box of the rune
	// positioned at pos, or false if the rune has no visible ink
	// (e.g. a space).
	PixelBounds(h FontHandle, r rune, scale float32, pos Vec2) (Rect, bool)

	// Rasterize renders the rune at the given pixel scale into a
	// coverage bitmap, or false if the rune has no visible ink.
	Rasterize(h FontHandle, r rune, scale float32) (Bitmap, bool)
}
