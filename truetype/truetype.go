// Package truetype implements the rroguelib.Rasterizer capability on
// github.com/golang/freetype and golang.org/x/image/font.
package truetype

import (
	"fmt"
	"image"
	"image/color"

	ftruetype "github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/tdejager/rroguelib"
)

// Rasterizer parses TrueType fonts and rasterizes glyph coverage
// bitmaps. Not safe for concurrent use; the render model is
// single-threaded and frame-locked.
type Rasterizer struct{}

// New creates a TrueType rasterizer.
func New() *Rasterizer {
	return &Rasterizer{}
}

var _ rroguelib.Rasterizer = (*Rasterizer)(nil)

// parsedFont is the concrete FontHandle. Faces are cached per scale
// since face construction walks the font tables.
type parsedFont struct {
	font  *ftruetype.Font
	faces map[float32]font.Face
}

func (p *parsedFont) face(scale float32) font.Face {
	if f, ok := p.faces[scale]; ok {
		return f
	}
	// DPI 72 makes point size equal pixel size, so scale is the
	// pixel em directly.
	f := ftruetype.NewFace(p.font, &ftruetype.Options{
		Size:    float64(scale),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	p.faces[scale] = f
	return f
}

// ParseFont implements rroguelib.Rasterizer.
func (r *Rasterizer) ParseFont(data []byte) (rroguelib.FontHandle, error) {
	f, err := ftruetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse truetype: %w", err)
	}
	return &parsedFont{font: f, faces: make(map[float32]font.Face)}, nil
}

// AdvanceWidth implements rroguelib.Rasterizer.
func (r *Rasterizer) AdvanceWidth(h rroguelib.FontHandle, rn rune, scale float32) float32 {
	p := h.(*parsedFont)
	adv, ok := p.face(scale).GlyphAdvance(rn)
	if !ok {
		return 0
	}
	return fixedToFloat(adv)
}

// VerticalMetrics implements rroguelib.Rasterizer. Descent is
// reported negative, measuring down from the baseline.
func (r *Rasterizer) VerticalMetrics(h rroguelib.FontHandle, scale float32) rroguelib.VMetrics {
	p := h.(*parsedFont)
	m := p.face(scale).Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := -fixedToFloat(m.Descent)
	lineGap := fixedToFloat(m.Height) - (ascent - descent)
	if lineGap < 0 {
		lineGap = 0
	}
	return rroguelib.VMetrics{Ascent: ascent, Descent: descent, LineGap: lineGap}
}

// PixelBounds implements rroguelib.Rasterizer. The box is the glyph's
// ink bounds positioned at pos, min floored and max ceiled to whole
// pixels. Returns false for glyphs without visible ink.
func (r *Rasterizer) PixelBounds(h rroguelib.FontHandle, rn rune, scale float32, pos rroguelib.Vec2) (rroguelib.Rect, bool) {
	p := h.(*parsedFont)
	bounds, _, ok := p.face(scale).GlyphBounds(rn)
	if !ok || bounds.Empty() {
		return rroguelib.Rect{}, false
	}
	return rroguelib.Rect{
		Min: rroguelib.Vec2{
			X: pos.X + float32(bounds.Min.X.Floor()),
			Y: pos.Y + float32(bounds.Min.Y.Floor()),
		},
		Max: rroguelib.Vec2{
			X: pos.X + float32(bounds.Max.X.Ceil()),
			Y: pos.Y + float32(bounds.Max.Y.Ceil()),
		},
	}, true
}

// Rasterize implements rroguelib.Rasterizer. The glyph is drawn into
// a tight alpha image with the baseline dot offset so ink lands at
// the bitmap origin.
func (r *Rasterizer) Rasterize(h rroguelib.FontHandle, rn rune, scale float32) (rroguelib.Bitmap, bool) {
	p := h.(*parsedFont)
	face := p.face(scale)
	bounds, _, ok := face.GlyphBounds(rn)
	if !ok || bounds.Empty() {
		return rroguelib.Bitmap{}, false
	}

	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	bw := bounds.Max.X.Ceil() - minX
	bh := bounds.Max.Y.Ceil() - minY
	if bw <= 0 || bh <= 0 {
		return rroguelib.Bitmap{}, false
	}

	img := image.NewAlpha(image.Rect(0, 0, bw, bh))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Alpha{A: 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(-minX), Y: fixed.I(-minY)},
	}
	d.DrawString(string(rn))

	pixels := make([]byte, bw*bh)
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			pixels[y*bw+x] = img.AlphaAt(x, y).A
		}
	}
	return rroguelib.Bitmap{W: bw, H: bh, Pixels: pixels}, true
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
