package rroguelib

// BuildGridMesh produces a line-list mesh marking cell boundaries:
// one vertex pair per horizontal line spanning the full screen width
// at each row boundary, and one per vertical line at each column
// boundary. Uses the same [0,1] to [-1,1] rescale as the text batch
// so grid lines and glyph quads stay pixel-aligned. Rebuilt only when
// the grid changes, not every frame.
func BuildGridMesh(grid CellGrid, colour [3]float32) []GridVertex {
	vertices := make([]GridVertex, 0, 2*(grid.Rows()+grid.Columns()))

	for row := uint32(0); row < grid.Rows(); row++ {
		y := -rescale((float32(row)*grid.Cell.Y + grid.Padding.Y) / grid.Screen.Y)
		vertices = append(vertices,
			GridVertex{Pos: [2]float32{-1, y}, Color: colour},
			GridVertex{Pos: [2]float32{1, y}, Color: colour},
		)
	}

	for col := uint32(0); col < grid.Columns(); col++ {
		x := rescale((float32(col)*grid.Cell.X + grid.Padding.X) / grid.Screen.X)
		vertices = append(vertices,
			GridVertex{Pos: [2]float32{x, -1}, Color: colour},
			GridVertex{Pos: [2]float32{x, 1}, Color: colour},
		)
	}

	return vertices
}
