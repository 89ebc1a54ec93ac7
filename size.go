package casteljau

import (
	"fmt"
)

type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size x×y.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Center returns the center of a rectangle of this size anchored at the origin.
func (sz Size) Center() Point {
	return Point{
		X: sz.Width / 2,
		Y: sz.Height / 2,
	}
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// IsEmpty reports whether either dimension is zero or negative.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0 && sz.Height > 0)
}
