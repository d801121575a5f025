package rroguelib_test

import (
	"github.com/tdejager/rroguelib"
)

// fakeRasterizer is a deterministic monospace rasterizer for tests:
// every inked rune advances by 10 pixels, has an 8x8 bitmap of full
// coverage, ascent 8, descent -2, line gap 1. Spaces have no ink.
// Per-rune bitmap sizes can be overridden for atlas pressure tests.
type fakeRasterizer struct {
	sizes map[rune][2]int // optional W,H override
}

type fakeFont struct{}

func (f *fakeRasterizer) ParseFont(data []byte) (rroguelib.FontHandle, error) {
	return fakeFont{}, nil
}

func (f *fakeRasterizer) AdvanceWidth(h rroguelib.FontHandle, r rune, scale float32) float32 {
	return 10
}

func (f *fakeRasterizer) VerticalMetrics(h rroguelib.FontHandle, scale float32) rroguelib.VMetrics {
	return rroguelib.VMetrics{Ascent: 8, Descent: -2, LineGap: 1}
}

func (f *fakeRasterizer) size(r rune) (int, int) {
	if s, ok := f.sizes[r]; ok {
		return s[0], s[1]
	}
	return 8, 8
}

func (f *fakeRasterizer) PixelBounds(h rroguelib.FontHandle, r rune, scale float32, pos rroguelib.Vec2) (rroguelib.Rect, bool) {
	if r == ' ' {
		return rroguelib.Rect{}, false
	}
	w, ht := f.size(r)
	min := pos.Add(rroguelib.Vec2{X: 1, Y: -7})
	return rroguelib.Rect{
		Min: min,
		Max: min.Add(rroguelib.Vec2{X: float32(w), Y: float32(ht)}),
	}, true
}

func (f *fakeRasterizer) Rasterize(h rroguelib.FontHandle, r rune, scale float32) (rroguelib.Bitmap, bool) {
	if r == ' ' {
		return rroguelib.Bitmap{}, false
	}
	w, ht := f.size(r)
	pixels := make([]byte, w*ht)
	for i := range pixels {
		pixels[i] = 255
	}
	return rroguelib.Bitmap{W: w, H: ht, Pixels: pixels}, true
}

// mockSurface records every surface call without touching a GPU.
type mockSurface struct {
	width, height int
	dpi           float32

	nextTexture rroguelib.TextureID
	textures    map[rroguelib.TextureID]mockTexture
	writes      []mockWrite

	gridDraws [][]rroguelib.GridVertex
	textDraws [][]rroguelib.TextVertex
	presents  int
	clears    []rroguelib.Color

	createErr  error
	gridErr    error
	textErr    error
	presentErr error
}

type mockTexture struct {
	w, h int
	fill byte
}

type mockWrite struct {
	id         rroguelib.TextureID
	x, y, w, h int
	pixels     []byte
}

func newMockSurface(width, height int) *mockSurface {
	return &mockSurface{
		width:    width,
		height:   height,
		dpi:      1,
		textures: make(map[rroguelib.TextureID]mockTexture),
	}
}

func (m *mockSurface) Size() (int, int)  { return m.width, m.height }
func (m *mockSurface) DPIScale() float32 { return m.dpi }

func (m *mockSurface) CreateTexture(w, h int, fill byte) (rroguelib.TextureID, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextTexture++
	m.textures[m.nextTexture] = mockTexture{w: w, h: h, fill: fill}
	return m.nextTexture, nil
}

func (m *mockSurface) WriteTexture(id rroguelib.TextureID, x, y, w, h int, pixels []byte) error {
	m.writes = append(m.writes, mockWrite{id: id, x: x, y: y, w: w, h: h, pixels: pixels})
	return nil
}

func (m *mockSurface) DestroyTexture(id rroguelib.TextureID) {
	delete(m.textures, id)
}

func (m *mockSurface) BeginFrame(clear rroguelib.Color) {
	m.clears = append(m.clears, clear)
}

func (m *mockSurface) DrawGrid(vertices []rroguelib.GridVertex) error {
	if m.gridErr != nil {
		return m.gridErr
	}
	m.gridDraws = append(m.gridDraws, vertices)
	return nil
}

func (m *mockSurface) DrawText(vertices []rroguelib.TextVertex, atlas rroguelib.TextureID) error {
	if m.textErr != nil {
		return m.textErr
	}
	m.textDraws = append(m.textDraws, vertices)
	return nil
}

func (m *mockSurface) Present() error {
	if m.presentErr != nil {
		return m.presentErr
	}
	m.presents++
	return nil
}
