package rroguelib

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sort"
)

// Glyph is a single glyph request: a rune at a pixel scale, targeted
// at a pixel position. Pos does not participate in cache identity;
// two requests for the same rune and scale share one atlas entry.
type Glyph struct {
	Rune  rune
	Scale float32
	Pos   Vec2
}

func (g Glyph) key() glyphKey { return glyphKey{r: g.Rune, scale: g.Scale} }

type glyphKey struct {
	r     rune
	scale float32
}

// AtlasRect locates a packed glyph: UV addresses the atlas texture in
// [0,1], Screen is the pixel-space quad the glyph covers at its
// requested position. Valid only until the next Queue/PackQueued
// cycle; packing may evict and relocate entries.
type AtlasRect struct {
	UV     Rect
	Screen Rect
}

// DirtyRegion is a sub-rectangle of the atlas written during the last
// pack. Only dirty regions need re-uploading to the GPU.
type DirtyRegion struct {
	X, Y, W, H int
	Pixels     []byte // W*H coverage bytes, row-major
}

// AtlasCache caches rasterized glyphs in a fixed-size 2-D region.
// The two-phase Queue/PackQueued protocol lets a frame resolve all of
// its layout before any pixel is produced, so the GPU sees one batched
// upload per frame instead of one per glyph.
type AtlasCache interface {
	// Queue marks a glyph as needed this frame. Duplicate requests
	// for the same rune and scale within a frame are coalesced.
	Queue(g Glyph)

	// PackQueued rasterizes and places all queued glyphs that are not
	// already resident and returns the newly written atlas regions.
	// Under space pressure it evicts least-recently-queued residents.
	// A glyph whose footprint exceeds the whole atlas is reported via
	// a joined AtlasOverflowError and skipped; the remaining glyphs
	// are still packed.
	PackQueued() ([]DirtyRegion, error)

	// RectFor returns the atlas and screen rectangles for a glyph, or
	// false if the glyph is not resident (not yet packed, evicted, or
	// without visible ink).
	RectFor(g Glyph) (AtlasRect, bool)
}

// atlasEntry is one resident glyph.
type atlasEntry struct {
	key        glyphKey
	x, y, w, h int
	bearing    Vec2 // bitmap top-left relative to the glyph origin
	pixels     []byte
	lastQueued uint64
}

// ShelfAtlas is an AtlasCache backed by shelf packing: glyphs fill a
// row left to right, a new row opens when the current one is full.
// Eviction repacks the most recently queued entries and drops whatever
// no longer fits, oldest first.
type ShelfAtlas struct {
	w, h int
	ras  Rasterizer
	font FontHandle

	frame    uint64
	queued   map[glyphKey]struct{}
	resident map[glyphKey]*atlasEntry

	// shelf cursor
	packX, packY, rowH int

	// CPU copy of the atlas, kept in sync with returned dirty
	// regions. Used for debug dumps and tests.
	pixels []byte
}

// NewShelfAtlas creates an atlas of the given pixel dimensions backed
// by the rasterizer and font handle that produce its glyph bitmaps.
func NewShelfAtlas(w, h int, ras Rasterizer, font FontHandle) *ShelfAtlas {
	return &ShelfAtlas{
		w:        w,
		h:        h,
		ras:      ras,
		font:     font,
		queued:   make(map[glyphKey]struct{}),
		resident: make(map[glyphKey]*atlasEntry),
		pixels:   make([]byte, w*h),
	}
}

// Queue implements AtlasCache.
func (a *ShelfAtlas) Queue(g Glyph) {
	a.queued[g.key()] = struct{}{}
}

// PackQueued implements AtlasCache.
func (a *ShelfAtlas) PackQueued() ([]DirtyRegion, error) {
	a.frame++

	var pending []*atlasEntry
	var errs []error
	for key := range a.queued {
		if e, ok := a.resident[key]; ok {
			e.lastQueued = a.frame
			continue
		}
		pending = append(pending, a.rasterizeEntry(key))
	}
	clear(a.queued)

	var dirty []DirtyRegion
	repacked := false
	for _, e := range pending {
		if e.w == 0 || e.h == 0 {
			// No ink (e.g. space): resident but never drawn.
			a.resident[e.key] = e
			continue
		}
		if e.w > a.w || e.h > a.h {
			errs = append(errs, &AtlasOverflowError{Glyph: e.key.r, W: e.w, H: e.h})
			continue
		}
		x, y, ok := a.place(e.w, e.h)
		if !ok {
			// Out of space: repack keeping the most recently queued
			// entries and retry. Everything placed so far moves, so
			// prior dirty regions for this pack are superseded.
			dirty = a.repack(append([]*atlasEntry{e}, a.residentByRecency()...))
			repacked = true
			continue
		}
		e.x, e.y = x, y
		a.resident[e.key] = e
		a.blit(e)
		if !repacked {
			dirty = append(dirty, DirtyRegion{X: e.x, Y: e.y, W: e.w, H: e.h, Pixels: e.pixels})
		}
	}
	if repacked {
		// A late repack must also cover entries placed after it.
		dirty = a.fullDirty()
	}
	return dirty, errors.Join(errs...)
}

// RectFor implements AtlasCache.
func (a *ShelfAtlas) RectFor(g Glyph) (AtlasRect, bool) {
	e, ok := a.resident[g.key()]
	if !ok || e.w == 0 || e.h == 0 {
		return AtlasRect{}, false
	}
	origin := Vec2{
		X: float32(math.Round(float64(g.Pos.X))),
		Y: float32(math.Round(float64(g.Pos.Y))),
	}
	screenMin := origin.Add(e.bearing)
	return AtlasRect{
		UV: Rect{
			Min: Vec2{X: float32(e.x) / float32(a.w), Y: float32(e.y) / float32(a.h)},
			Max: Vec2{X: float32(e.x+e.w) / float32(a.w), Y: float32(e.y+e.h) / float32(a.h)},
		},
		Screen: Rect{
			Min: screenMin,
			Max: screenMin.Add(Vec2{X: float32(e.w), Y: float32(e.h)}),
		},
	}, true
}

// rasterizeEntry produces an unplaced entry for a glyph key.
func (a *ShelfAtlas) rasterizeEntry(key glyphKey) *atlasEntry {
	e := &atlasEntry{key: key, lastQueued: a.frame}
	bounds, ok := a.ras.PixelBounds(a.font, key.r, key.scale, Vec2{})
	if !ok {
		return e
	}
	bm, ok := a.ras.Rasterize(a.font, key.r, key.scale)
	if !ok {
		return e
	}
	e.w, e.h = bm.W, bm.H
	e.bearing = bounds.Min
	e.pixels = bm.Pixels
	return e
}

// place advances the shelf cursor, opening a new row when the current
// one cannot take the rectangle. Returns false when the atlas is full.
func (a *ShelfAtlas) place(w, h int) (int, int, bool) {
	if a.packX+w > a.w {
		a.packX = 0
		a.packY += a.rowH
		a.rowH = 0
	}
	if a.packY+h > a.h {
		return 0, 0, false
	}
	if h > a.rowH {
		a.rowH = h
	}
	x, y := a.packX, a.packY
	a.packX += w
	return x, y, true
}

// residentByRecency returns resident inked entries, most recently
// queued first.
func (a *ShelfAtlas) residentByRecency() []*atlasEntry {
	entries := make([]*atlasEntry, 0, len(a.resident))
	for _, e := range a.resident {
		if e.w > 0 && e.h > 0 {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].lastQueued > entries[j].lastQueued
	})
	return entries
}

// repack clears the atlas and re-places entries in the given order.
// Entries that no longer fit are evicted; since placement order is
// most-recent-first, the evicted entries are the least recently
// queued. Returns dirty regions covering everything placed.
func (a *ShelfAtlas) repack(entries []*atlasEntry) []DirtyRegion {
	a.packX, a.packY, a.rowH = 0, 0, 0
	for i := range a.pixels {
		a.pixels[i] = 0
	}
	for k, e := range a.resident {
		if e.w > 0 && e.h > 0 {
			delete(a.resident, k)
		}
	}
	dirty := make([]DirtyRegion, 0, len(entries))
	for _, e := range entries {
		x, y, ok := a.place(e.w, e.h)
		if !ok {
			continue
		}
		e.x, e.y = x, y
		a.resident[e.key] = e
		a.blit(e)
		dirty = append(dirty, DirtyRegion{X: e.x, Y: e.y, W: e.w, H: e.h, Pixels: e.pixels})
	}
	return dirty
}

// fullDirty returns one dirty region per resident inked entry,
// covering the whole current atlas contents.
func (a *ShelfAtlas) fullDirty() []DirtyRegion {
	var dirty []DirtyRegion
	for _, e := range a.resident {
		if e.w == 0 || e.h == 0 {
			continue
		}
		dirty = append(dirty, DirtyRegion{X: e.x, Y: e.y, W: e.w, H: e.h, Pixels: e.pixels})
	}
	return dirty
}

// blit copies an entry's pixels into the CPU atlas copy.
func (a *ShelfAtlas) blit(e *atlasEntry) {
	for row := 0; row < e.h; row++ {
		dst := (e.y+row)*a.w + e.x
		src := row * e.w
		copy(a.pixels[dst:dst+e.w], e.pixels[src:src+e.w])
	}
}

// DumpPNG writes the CPU copy of the atlas as a grayscale PNG, for
// debugging pack layouts.
func (a *ShelfAtlas) DumpPNG(w io.Writer) error {
	img := image.NewGray(image.Rect(0, 0, a.w, a.h))
	for y := 0; y < a.h; y++ {
		for x := 0; x < a.w; x++ {
			img.SetGray(x, y, color.Gray{Y: a.pixels[y*a.w+x]})
		}
	}
	return png.Encode(w, img)
}
