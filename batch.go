package rroguelib

// BuildTextBatch converts positioned glyphs into a triangle-list
// vertex stream in clip space. Each glyph with a resolved atlas
// rectangle contributes six vertices: two triangles sharing the
// diagonal from top-left to bottom-right, consistent winding.
// Unresolved glyphs (queued but not yet packed, or failed to pack)
// contribute nothing this frame and show up once packed.
func BuildTextBatch(atlas AtlasCache, glyphs []PositionedGlyph, scale float32, screen Vec2, colour Color) []TextVertex {
	vertices := make([]TextVertex, 0, len(glyphs)*6)
	for _, g := range glyphs {
		rect, ok := atlas.RectFor(Glyph{Rune: g.Rune, Scale: scale, Pos: g.Pos})
		if !ok {
			continue
		}
		uv, px := rect.UV, rect.Screen

		// Rescale pixel space to clip space, flipping y: pixel y
		// grows downward, clip y grows upward.
		clip := Rect{
			Min: Vec2{
				X: 2 * (px.Min.X/screen.X - 0.5),
				Y: 2 * (1 - px.Min.Y/screen.Y - 0.5),
			},
			Max: Vec2{
				X: 2 * (px.Max.X/screen.X - 0.5),
				Y: 2 * (1 - px.Max.Y/screen.Y - 0.5),
			},
		}

		topLeft := TextVertex{Pos: [2]float32{clip.Min.X, clip.Min.Y}, TexCoord: [2]float32{uv.Min.X, uv.Min.Y}, Color: colour}
		topRight := TextVertex{Pos: [2]float32{clip.Max.X, clip.Min.Y}, TexCoord: [2]float32{uv.Max.X, uv.Min.Y}, Color: colour}
		bottomRight := TextVertex{Pos: [2]float32{clip.Max.X, clip.Max.Y}, TexCoord: [2]float32{uv.Max.X, uv.Max.Y}, Color: colour}
		bottomLeft := TextVertex{Pos: [2]float32{clip.Min.X, clip.Max.Y}, TexCoord: [2]float32{uv.Min.X, uv.Max.Y}, Color: colour}

		vertices = append(vertices,
			topLeft, topRight, bottomRight,
			topLeft, bottomRight, bottomLeft,
		)
	}
	return vertices
}
