package rroguelib

// Roguelib renders monospaced character grids over a graphics
// surface. It owns the font registry and drives the per-frame
// pipeline: layout, glyph queueing, atlas packing, dirty-region
// upload, batch building and the two draw submissions (grid lines
// first, glyph quads second).
//
// Single-threaded and frame-locked: the atlas and its texture are
// mutated only during the pack/upload step of the current frame.
type Roguelib struct {
	surface Surface
	ras     Rasterizer
	fonts   *FontRegistry

	clearColor Color
	gridColor  [3]float32
	textColor  Color

	// Grid mesh cache, rebuilt only when the grid changes.
	meshGrid CellGrid
	mesh     []GridVertex
	hasMesh  bool
}

// Option configures a Roguelib instance.
type Option func(*Roguelib)

// WithClearColor sets the background clear color.
func WithClearColor(c Color) Option {
	return func(r *Roguelib) { r.clearColor = c }
}

// WithGridColor sets the color of the debug grid lines.
func WithGridColor(c [3]float32) Option {
	return func(r *Roguelib) { r.gridColor = c }
}

// WithTextColor sets the default glyph color.
func WithTextColor(c Color) Option {
	return func(r *Roguelib) { r.textColor = c }
}

// New creates a Roguelib drawing to the given surface with glyphs
// produced by the given rasterizer.
func New(surface Surface, ras Rasterizer, opts ...Option) *Roguelib {
	r := &Roguelib{
		surface:    surface,
		ras:        ras,
		clearColor: Black,
		gridColor:  [3]float32{1, 1, 1},
		textColor:  White,
	}
	r.fonts = NewFontRegistry(ras, surface)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Fonts returns the font registry.
func (r *Roguelib) Fonts() *FontRegistry { return r.fonts }

// RegisterFont registers a font under a name. The pixel scale is
// pointSize multiplied by the surface's current DPI scale.
func (r *Roguelib) RegisterFont(name string, fontBytes []byte, pointSize float32) error {
	return r.fonts.Register(name, fontBytes, pointSize, r.surface.DPIScale())
}

// DrawOption configures a single draw call.
type DrawOption func(*drawOptions)

type drawOptions struct {
	policy     LayoutPolicy
	startIndex uint32
	colour     Color
}

// WithPolicy selects the layout policy for this draw call.
func WithPolicy(p LayoutPolicy) DrawOption {
	return func(o *drawOptions) { o.policy = p }
}

// WithStartIndex places the first character at the given grid index
// instead of index zero. Grid-indexed layout only.
func WithStartIndex(index uint32) DrawOption {
	return func(o *drawOptions) { o.startIndex = index }
}

// WithColor overrides the default glyph color for this draw call.
func WithColor(c Color) DrawOption {
	return func(o *drawOptions) { o.colour = c }
}

// DrawGridText renders text into consecutive grid cells of the named
// font's cell grid and presents the frame. This is the primary entry
// point for terminal-style output.
func (r *Roguelib) DrawGridText(fontName, text string) error {
	return r.Draw(fontName, text)
}

// Draw runs the full frame pipeline for one string: layout, atlas
// queue/pack, dirty-region upload, batch build, grid pass, text pass,
// present. Per-glyph atlas overflow degrades to a missing glyph;
// font and surface failures abort the frame.
func (r *Roguelib) Draw(fontName, text string, opts ...DrawOption) error {
	options := drawOptions{colour: r.textColor}
	for _, opt := range opts {
		opt(&options)
	}

	width, height := r.surface.Size()
	screen := Vec2{X: float32(width), Y: float32(height)}

	font, err := r.fonts.Get(fontName)
	if err != nil {
		return err
	}

	// The grid is a fresh value each frame; a resize or font swap is
	// picked up here, never patched in place. Vertical padding is the
	// ascent so glyph baselines land inside their cells.
	grid := NewCellGrid(
		screen,
		Vec2{X: font.MaxGlyphWidth, Y: font.MaxGlyphHeight},
		Vec2{X: 0, Y: font.Metrics.Ascent},
	)

	var glyphs []PositionedGlyph
	switch options.policy {
	case LayoutAdvanceWrapped:
		glyphs = LayoutAdvance(r.ras, font.Handle, font.Scale, screen.X, text)
	default:
		glyphs = LayoutGrid(grid, text, options.startIndex)
	}

	for _, g := range glyphs {
		font.Atlas.Queue(Glyph{Rune: g.Rune, Scale: font.Scale, Pos: g.Pos})
	}

	// Overflowing glyphs stay unresolved and are skipped by the batch
	// builder; the rest of the string still renders.
	dirty, _ := font.Atlas.PackQueued()
	for _, region := range dirty {
		if err := r.surface.WriteTexture(font.Texture, region.X, region.Y, region.W, region.H, region.Pixels); err != nil {
			return &DrawSubmissionError{Pass: "atlas upload", Err: err}
		}
	}

	textBatch := BuildTextBatch(font.Atlas, glyphs, font.Scale, screen, options.colour)

	if !r.hasMesh || grid != r.meshGrid {
		r.mesh = BuildGridMesh(grid, r.gridColor)
		r.meshGrid = grid
		r.hasMesh = true
	}

	r.surface.BeginFrame(r.clearColor)
	if err := r.surface.DrawGrid(r.mesh); err != nil {
		return &DrawSubmissionError{Pass: "grid", Err: err}
	}
	if err := r.surface.DrawText(textBatch, font.Texture); err != nil {
		return &DrawSubmissionError{Pass: "text", Err: err}
	}
	if err := r.surface.Present(); err != nil {
		return &DrawSubmissionError{Pass: "present", Err: err}
	}
	return nil
}

// Destroy releases all GPU resources owned through the font registry.
func (r *Roguelib) Destroy() {
	r.fonts.Destroy()
}
