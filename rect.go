package casteljau

import "fmt"

// Rect is an axis-aligned rectangle described by its origin and size.
//
// Rectangles with zero or negative width or height are valid values, but they
// contain no points.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect returns the rectangle with origin (x, y) and the given dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// NewRectFromOrigin returns a rectangle with the given size, extending to the right and
// down (for positive sizes) from the origin.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return Rect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  size.Width,
		Height: size.Height,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g, %g×%g]", r.X, r.Y, r.Width, r.Height)
}

// Origin returns the origin of the rectangle.
//
// This is the top left corner in a y-down space and with
// non-negative width and height.
func (r Rect) Origin() Point {
	return Point{
		X: r.X,
		Y: r.Y,
	}
}

func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Area returns the rectangle's area. It is negative if exactly one of width and
// height is negative.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return !(r.Width > 0 && r.Height > 0)
}

// Contains reports whether pt lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X &&
		pt.X < r.X+r.Width &&
		pt.Y >= r.Y &&
		pt.Y < r.Y+r.Height
}

// Inset returns a rectangle shrunk by d on every side. Negative values grow
// the rectangle.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		X:      r.X + d,
		Y:      r.Y + d,
		Width:  r.Width - 2*d,
		Height: r.Height - 2*d,
	}
}
