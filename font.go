package rroguelib

// fullBlock is the reference glyph probed for the canonical monospace
// cell width. The target font is assumed fixed-width; behavior for
// proportional fonts is undefined upstream and no fallback is guessed.
const fullBlock = '█'

// FontEntry holds everything needed to draw with one registered font:
// parsed font handle, pixel scale, monospace cell metrics, the glyph
// atlas and its GPU texture. Owned exclusively by the FontRegistry;
// callers borrow an entry for the duration of one draw call and must
// not retain it across frames, since packing can relocate atlas
// contents.
type FontEntry struct {
	Handle FontHandle
	Scale  float32

	// Cell metrics: width probed from the full-block glyph advance,
	// height from ascent minus descent.
	MaxGlyphWidth  float32
	MaxGlyphHeight float32

	// Metrics are the vertical metrics at Scale, captured once at
	// registration.
	Metrics VMetrics

	Atlas   AtlasCache
	Texture TextureID
}

// FontRegistry owns named font entries. It has no rendering logic of
// its own.
type FontRegistry struct {
	ras     Rasterizer
	surface Surface
	fonts   map[string]*FontEntry
}

// NewFontRegistry creates an empty registry backed by the given
// rasterizer and surface capabilities.
func NewFontRegistry(ras Rasterizer, surface Surface) *FontRegistry {
	return &FontRegistry{
		ras:     ras,
		surface: surface,
		fonts:   make(map[string]*FontEntry),
	}
}

// Register parses font bytes and creates the entry's atlas and GPU
// texture, both sized to the current viewport, the texture initialized
// to a neutral gray fill. The pixel scale is pointSize*dpiScale.
// Registering allocates GPU memory proportional to the viewport area,
// one coverage byte per pixel.
func (fr *FontRegistry) Register(name string, fontBytes []byte, pointSize, dpiScale float32) error {
	handle, err := fr.ras.ParseFont(fontBytes)
	if err != nil {
		return &FontLoadError{Name: name, Err: err}
	}
	scale := pointSize * dpiScale

	vm := fr.ras.VerticalMetrics(handle, scale)
	maxHeight := vm.Ascent - vm.Descent
	maxWidth := fr.ras.AdvanceWidth(handle, fullBlock, scale)

	width, height := fr.surface.Size()
	texture, err := fr.surface.CreateTexture(width, height, 128)
	if err != nil {
		return &TextureCreationError{W: width, H: height, Err: err}
	}

	fr.fonts[name] = &FontEntry{
		Handle:         handle,
		Scale:          scale,
		MaxGlyphWidth:  maxWidth,
		MaxGlyphHeight: maxHeight,
		Metrics:        vm,
		Atlas:          NewShelfAtlas(width, height, fr.ras, handle),
		Texture:        texture,
	}
	return nil
}

// Get returns the mutable entry for a registered font name.
func (fr *FontRegistry) Get(name string) (*FontEntry, error) {
	entry, ok := fr.fonts[name]
	if !ok {
		return nil, &UnknownFontError{Name: name}
	}
	return entry, nil
}

// Destroy releases every entry's GPU texture. The registry is empty
// afterwards.
func (fr *FontRegistry) Destroy() {
	for name, entry := range fr.fonts {
		fr.surface.DestroyTexture(entry.Texture)
		delete(fr.fonts, name)
	}
}
