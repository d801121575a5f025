package rroguelib

// CellGrid divides a screen into fixed-size cells addressed by a 1-D
// row-major index. It is an immutable value: a resize or font swap
// produces a fresh grid at the start of the frame, the old one is
// discarded.
type CellGrid struct {
	Screen  Vec2 // screen dimensions in pixels
	Cell    Vec2 // cell dimensions in pixels
	Padding Vec2 // origin offset in pixels

	columns uint32
	rows    uint32
}

// NewCellGrid computes the cell counts for the given screen, cell and
// padding sizes. Column and row counts are the floor of the usable
// span divided by the cell size.
func NewCellGrid(screen, cell, padding Vec2) CellGrid {
	return CellGrid{
		Screen:  screen,
		Cell:    cell,
		Padding: padding,
		columns: uint32((screen.X - padding.X) / cell.X),
		rows:    uint32((screen.Y - padding.Y) / cell.Y),
	}
}

// Columns returns the number of whole cells that fit horizontally.
func (g CellGrid) Columns() uint32 { return g.columns }

// Rows returns the number of whole cells that fit vertically.
func (g CellGrid) Rows() uint32 { return g.rows }

// IndexToPosition returns the top-left pixel corner of the cell at the
// given row-major index. Indices past Columns()*Rows() keep producing
// positions in rows below the visible screen; such glyphs are clipped
// by the viewport rather than rejected.
func (g CellGrid) IndexToPosition(index uint32) Vec2 {
	col := index % g.columns
	row := index / g.columns
	return Vec2{
		X: float32(col)*g.Cell.X + g.Padding.X,
		Y: float32(row)*g.Cell.Y + g.Padding.Y,
	}
}

// PositionToIndex is the inverse of IndexToPosition for positions that
// lie exactly on a cell corner. It exists so callers can map a pixel
// back to the cell it belongs to.
func (g CellGrid) PositionToIndex(pos Vec2) uint32 {
	col := uint32((pos.X - g.Padding.X) / g.Cell.X)
	row := uint32((pos.Y - g.Padding.Y) / g.Cell.Y)
	return row*g.columns + col
}
