package rroguelib_test

import (
	"testing"

	"github.com/tdejager/rroguelib"
)

func TestCellGridCounts(t *testing.T) {
	tests := []struct {
		name          string
		screen, cell  rroguelib.Vec2
		padding       rroguelib.Vec2
		columns, rows uint32
	}{
		{
			name:    "1080p terminal",
			screen:  rroguelib.Vec2{X: 1920, Y: 1080},
			cell:    rroguelib.Vec2{X: 24, Y: 32},
			columns: 80,
			rows:    33,
		},
		{
			name:    "padding shrinks usable area",
			screen:  rroguelib.Vec2{X: 100, Y: 100},
			cell:    rroguelib.Vec2{X: 10, Y: 10},
			padding: rroguelib.Vec2{X: 5, Y: 15},
			columns: 9,
			rows:    8,
		},
		{
			name:    "non-dividing cell size floors",
			screen:  rroguelib.Vec2{X: 100, Y: 100},
			cell:    rroguelib.Vec2{X: 33, Y: 33},
			columns: 3,
			rows:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := rroguelib.NewCellGrid(tt.screen, tt.cell, tt.padding)
			if grid.Columns() != tt.columns {
				t.Errorf("Columns() = %d, want %d", grid.Columns(), tt.columns)
			}
			if grid.Rows() != tt.rows {
				t.Errorf("Rows() = %d, want %d", grid.Rows(), tt.rows)
			}
		})
	}
}

func TestIndexToPosition(t *testing.T) {
	grid := rroguelib.NewCellGrid(
		rroguelib.Vec2{X: 1920, Y: 1080},
		rroguelib.Vec2{X: 24, Y: 32},
		rroguelib.Vec2{},
	)

	// Index 81 is row 1, col 1.
	got := grid.IndexToPosition(81)
	want := rroguelib.Vec2{X: 24, Y: 32}
	if got != want {
		t.Errorf("IndexToPosition(81) = %v, want %v", got, want)
	}

	if got := grid.IndexToPosition(0); got != (rroguelib.Vec2{}) {
		t.Errorf("IndexToPosition(0) = %v, want origin", got)
	}

	// Last cell of the first row.
	got = grid.IndexToPosition(79)
	want = rroguelib.Vec2{X: 79 * 24, Y: 0}
	if got != want {
		t.Errorf("IndexToPosition(79) = %v, want %v", got, want)
	}
}

func TestIndexToPositionPadding(t *testing.T) {
	grid := rroguelib.NewCellGrid(
		rroguelib.Vec2{X: 100, Y: 100},
		rroguelib.Vec2{X: 10, Y: 10},
		rroguelib.Vec2{X: 3, Y: 7},
	)
	got := grid.IndexToPosition(0)
	if got != (rroguelib.Vec2{X: 3, Y: 7}) {
		t.Errorf("IndexToPosition(0) = %v, want padding offset", got)
	}
}

func TestIndexRoundTrip(t *testing.T) {
	grid := rroguelib.NewCellGrid(
		rroguelib.Vec2{X: 1920, Y: 1080},
		rroguelib.Vec2{X: 24, Y: 32},
		rroguelib.Vec2{},
	)

	seen := make(map[rroguelib.Vec2]uint32)
	for index := uint32(0); index < grid.Columns()*grid.Rows(); index++ {
		pos := grid.IndexToPosition(index)
		if prev, dup := seen[pos]; dup {
			t.Fatalf("indices %d and %d map to the same position %v", prev, index, pos)
		}
		seen[pos] = index
		if back := grid.PositionToIndex(pos); back != index {
			t.Fatalf("PositionToIndex(IndexToPosition(%d)) = %d", index, back)
		}
	}
}

func TestIndexOverflowKeepsComputing(t *testing.T) {
	grid := rroguelib.NewCellGrid(
		rroguelib.Vec2{X: 100, Y: 100},
		rroguelib.Vec2{X: 10, Y: 10},
		rroguelib.Vec2{},
	)

	// One past the last visible cell: position continues into the row
	// below the screen instead of failing.
	pos := grid.IndexToPosition(grid.Columns() * grid.Rows())
	if pos.Y < grid.Screen.Y {
		t.Errorf("overflow index should land below the screen, got %v", pos)
	}
}
