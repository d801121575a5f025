package rroguelib

import "golang.org/x/text/unicode/norm"

// LayoutPolicy selects how a string is mapped to glyph positions.
type LayoutPolicy int

const (
	// LayoutGridIndexed places every character in consecutive grid
	// cells; wrapping is implicit in the row-major index formula. The
	// correct mode for a fixed-width terminal-style grid.
	LayoutGridIndexed LayoutPolicy = iota

	// LayoutAdvanceWrapped tracks a caret and advances by each
	// glyph's advance width, wrapping to the next line when a glyph's
	// bounding box would cross the target width.
	LayoutAdvanceWrapped
)

// PositionedGlyph is a character resolved to a target pixel position.
// Produced fresh every frame; never cached across frames because the
// grid may change.
type PositionedGlyph struct {
	Rune rune
	Pos  Vec2
}

// LayoutGrid places each character of text in consecutive cells of the
// grid starting at startIndex. Text is NFC-normalized first so a
// combining sequence occupies one cell as its composed form. Output
// order is input order.
func LayoutGrid(grid CellGrid, text string, startIndex uint32) []PositionedGlyph {
	normalized := norm.NFC.String(text)
	glyphs := make([]PositionedGlyph, 0, len(normalized))
	index := startIndex
	for _, r := range normalized {
		glyphs = append(glyphs, PositionedGlyph{Rune: r, Pos: grid.IndexToPosition(index)})
		index++
	}
	return glyphs
}

// LayoutAdvance places characters left to right starting at
// (0, ascent), advancing the caret by each glyph's advance width. A
// glyph whose bounding box would cross width is re-positioned at the
// start of the next line, never dropped: output length always equals
// the normalized input length.
func LayoutAdvance(ras Rasterizer, font FontHandle, scale float32, width float32, text string) []PositionedGlyph {
	vm := ras.VerticalMetrics(font, scale)
	lineAdvance := vm.Ascent - vm.Descent + vm.LineGap

	normalized := norm.NFC.String(text)
	glyphs := make([]PositionedGlyph, 0, len(normalized))
	caret := Vec2{X: 0, Y: vm.Ascent}
	for _, r := range normalized {
		pos := caret
		if bounds, ok := ras.PixelBounds(font, r, scale, pos); ok && bounds.Max.X > width {
			caret = Vec2{X: 0, Y: caret.Y + lineAdvance}
			pos = caret
		}
		glyphs = append(glyphs, PositionedGlyph{Rune: r, Pos: pos})
		caret.X += ras.AdvanceWidth(font, r, scale)
	}
	return glyphs
}
