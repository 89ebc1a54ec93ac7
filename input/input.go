// Package input describes the per-frame input snapshot consumed by the camera
// and scene. Frontends poll their windowing library once per frame and fill in
// a State; everything downstream is a pure function of it.
package input

import "honnef.co/go/casteljau"

// Keys is a set of held keys.
type Keys uint8

const (
	KeyUp Keys = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
	// KeyFast is the modifier that raises the camera's pan speed.
	KeyFast
)

// Has reports whether all keys in k are held.
func (ks Keys) Has(k Keys) bool {
	return ks&k == k
}

// Button is the state of one pointer button during a frame.
type Button struct {
	// Down is true for every frame the button is held.
	Down bool
	// Pressed is true only in the frame the button went down.
	Pressed bool
	// Released is true only in the frame the button went up.
	Released bool
}

// Next returns the state for the following frame given whether the button is
// held in it. It is used by frontends that only report held state and by
// tests.
func (b Button) Next(down bool) Button {
	return Button{
		Down:     down,
		Pressed:  down && !b.Down,
		Released: !down && b.Down,
	}
}

// State is a snapshot of all input for one frame.
type State struct {
	Keys Keys
	// Pointer is the pointer position in screen space.
	Pointer casteljau.Point
	// Primary is usually the left mouse button and Secondary the right one.
	Primary   Button
	Secondary Button
	// Wheel is the scroll delta for this frame; positive values scroll up.
	Wheel float64
}
