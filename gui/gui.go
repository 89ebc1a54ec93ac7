// Package gui implements the few immediate-mode widgets of the playground's
// overlay.
//
// Each widget comes as a pair: an evaluation function that takes the current
// value and the frame's input and returns the new value, and a Draw function
// that renders the widget onto a Canvas. Callers evaluate all widgets during
// their update step and draw them later in the same frame, so interaction
// still takes effect with a single frame of latency.
package gui

import (
	"image/color"
	"math"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/input"
)

// Canvas is the subset of a renderer needed to draw widgets. Coordinates are
// in screen space.
type Canvas interface {
	FillRect(r casteljau.Rect, c color.RGBA)
	StrokeRect(r casteljau.Rect, thickness float64, c color.RGBA)
	// Text draws s with its top-left corner at pt.
	Text(s string, pt casteljau.Point, size float64, c color.RGBA)
	MeasureText(s string, size float64) float64
}

// TextSize is the font size used for widget labels.
const TextSize = 10

// Hovered reports whether the pointer is over r.
func Hovered(r casteljau.Rect, in input.State) bool {
	return r.Contains(in.Pointer)
}

// Checkbox toggles value when the primary button is pressed over r.
func Checkbox(r casteljau.Rect, value bool, in input.State) bool {
	if in.Primary.Pressed && Hovered(r, in) {
		return !value
	}
	return value
}

// Button reports whether the button at r was clicked this frame.
func Button(r casteljau.Rect, in input.State) bool {
	return in.Primary.Pressed && Hovered(r, in)
}

// Slider returns the value selected by a horizontal slider at r spanning
// [lo, hi] and whether the slider is being dragged. A drag starts when the
// primary button is pressed over r and lasts while the button is held, even
// if the pointer leaves r; active is the state returned by the previous frame.
// During a drag the value follows the pointer, clamped to the range.
func Slider(r casteljau.Rect, value, lo, hi float64, active bool, in input.State) (float64, bool) {
	if in.Primary.Pressed && Hovered(r, in) {
		active = true
	}
	if !in.Primary.Down {
		active = false
	}
	if active && r.Width > 0 {
		frac := math.Min(math.Max((in.Pointer.X-r.X)/r.Width, 0), 1)
		value = lo + frac*(hi-lo)
	}
	return math.Min(math.Max(value, lo), hi), active
}

// DrawCheckbox draws a checkbox with its label to the right.
func DrawCheckbox(cv Canvas, r casteljau.Rect, label string, value, hovered bool) {
	border := Gray
	if hovered {
		border = DarkGray
	}
	if value {
		cv.FillRect(r.Inset(3), Gray)
	}
	cv.StrokeRect(r, 1, border)
	cv.Text(label, casteljau.Pt(r.MaxX()+4, r.Y+(r.Height-TextSize)/2), TextSize, DarkGray)
}

// DrawButton draws a filled button with a centered label.
func DrawButton(cv Canvas, r casteljau.Rect, label string, hovered bool) {
	const size = 11
	bg, fg := LightGray, DarkGray
	if hovered {
		bg, fg = DarkBrown, Black
	}
	cv.FillRect(r, bg)
	x := r.X + (r.Width-cv.MeasureText(label, size))/2
	y := r.Y + (r.Height-size)/2
	cv.Text(label, casteljau.Pt(x, y), size, fg)
}

// DrawSlider draws a slider bar with label on its left and valueText on its
// right.
func DrawSlider(cv Canvas, r casteljau.Rect, label, valueText string, value, lo, hi float64) {
	cv.FillRect(r, LightGray)
	if hi > lo {
		frac := math.Min(math.Max((value-lo)/(hi-lo), 0), 1)
		cv.FillRect(casteljau.Rect{X: r.X, Y: r.Y, Width: r.Width * frac, Height: r.Height}.Inset(1), SkyBlue)
	}
	cv.StrokeRect(r, 1, Gray)

	ty := r.Y + (r.Height-TextSize)/2
	lw := cv.MeasureText(label, TextSize)
	cv.Text(label, casteljau.Pt(r.X-lw-4, ty), TextSize, DarkGray)
	cv.Text(valueText, casteljau.Pt(r.MaxX()+4, ty), TextSize, DarkGray)
}
