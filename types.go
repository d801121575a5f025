package rroguelib

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle described by its corners.
// Min is the top-left corner, Max the bottom-right (pixel space,
// y growing downward).
type Rect struct {
	Min, Max Vec2
}

// W returns the rectangle width.
func (r Rect) W() float32 { return r.Max.X - r.Min.X }

// H returns the rectangle height.
func (r Rect) H() float32 { return r.Max.Y - r.Min.Y }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Color is an RGBA color with components in [0,1].
type Color [4]float32

// Predefined colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
	Gray  = Color{0.5, 0.5, 0.5, 1}
)

// TextVertex is one vertex of a glyph quad.
// Pos is in clip space ([-1,1], y up), TexCoord in atlas UV space
// ([0,1]). Memory layout matches OpenGL vertex attribute
// expectations: 2+2+4 contiguous float32.
type TextVertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    [4]float32
}

// GridVertex is one vertex of the grid-line mesh, in clip space.
type GridVertex struct {
	Pos   [2]float32
	Color [3]float32
}

// rescale maps a [0,1] normalized coordinate to [-1,1] clip space.
func rescale(f float32) float32 {
	return -1 + f*2
}
