// Package camera implements a 2D camera with keyboard panning, edge-scroll
// panning, snap-to-pointer, eased recentering and stepped zoom.
//
// The camera maps world space to screen space as
//
//	screen = (world − Target) · Zoom + Offset
//
// so Target is the world point drawn at screen position Offset. Each update
// eases Offset towards the screen center, which makes the view follow
// Target with a lag instead of snapping to it.
package camera

import (
	"math"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/input"
)

// Config holds the tunables of a Camera. All speeds are per frame.
type Config struct {
	Speed     float64
	FastSpeed float64
	// Smoothing is the fraction of the offset error removed per frame.
	Smoothing float64
	ZoomStep  float64
	MinZoom   float64
	MaxZoom   float64
}

// DefaultConfig returns the camera settings used by the playground.
func DefaultConfig() Config {
	return Config{
		Speed:     2.0,
		FastSpeed: 3.5,
		Smoothing: 0.1,
		ZoomStep:  0.1,
		MinZoom:   0.1,
		MaxZoom:   3.0,
	}
}

type Camera struct {
	// Offset is the screen-space position at which Target is drawn.
	Offset casteljau.Vec2
	// Target is the world-space point the camera focuses on.
	Target casteljau.Point
	// Rotation is in radians. Update never changes it.
	Rotation float64
	// Zoom must be positive.
	Zoom float64

	cfg      Config
	viewport casteljau.Rect
}

// New returns a camera with zoom 1, focused on the world origin, and drawing
// it at the top-left corner of the screen.
func New(cfg Config) *Camera {
	return &Camera{
		Zoom: 1,
		cfg:  cfg,
	}
}

// Config returns the camera's configuration.
func (c *Camera) Config() Config {
	return c.cfg
}

// Viewport returns the world-space rectangle visible during the last update.
func (c *Camera) Viewport() casteljau.Rect {
	return c.viewport
}

// Transform returns the world-to-screen transform.
func (c *Camera) Transform() casteljau.Affine {
	return casteljau.Translate(casteljau.Vec2(c.Target).Negate()).
		ThenRotate(c.Rotation).
		ThenScale(c.Zoom, c.Zoom).
		ThenTranslate(c.Offset)
}

func (c *Camera) WorldToScreen(pt casteljau.Point) casteljau.Point {
	return pt.Transform(c.Transform())
}

func (c *Camera) ScreenToWorld(pt casteljau.Point) casteljau.Point {
	return pt.Transform(c.Transform().Invert())
}

// Speed returns the pan speed for the given held keys.
func (c *Camera) Speed(keys input.Keys) float64 {
	if keys.Has(input.KeyFast) {
		return c.cfg.FastSpeed
	}
	return c.cfg.Speed
}

// Update advances the camera by one frame.
//
// Keyboard panning moves Target first. Then, while the secondary button is
// held, the pointer pans the camera: if it lies in one of the edge zones of
// the previous viewport, Target moves towards that edge; otherwise Target
// jumps to the pointer's world position. Finally Offset is eased towards the
// screen center, zoom is stepped by the wheel, and the viewport is
// recomputed.
func (c *Camera) Update(in input.State, screen casteljau.Size) {
	speed := c.Speed(in.Keys)

	if in.Keys.Has(input.KeyUp) {
		c.Target.Y -= speed
	}
	if in.Keys.Has(input.KeyDown) {
		c.Target.Y += speed
	}
	if in.Keys.Has(input.KeyLeft) {
		c.Target.X -= speed
	}
	if in.Keys.Has(input.KeyRight) {
		c.Target.X += speed
	}

	if in.Secondary.Down {
		pointer := c.ScreenToWorld(in.Pointer)
		if dir := EdgeDirection(c.viewport, pointer, speed); dir.Hypot() > 0 {
			c.Target = c.Target.Translate(dir)
		} else {
			c.Target = pointer
		}
	}

	delta := c.Target.Sub(c.ScreenToWorld(screen.Center()))
	c.Offset = c.Offset.Sub(delta.Mul(c.cfg.Smoothing))

	c.zoom(in.Wheel)
	c.updateViewport(screen)
}

func (c *Camera) zoom(wheel float64) {
	step := c.cfg.ZoomStep
	switch {
	case wheel > 0 && c.Zoom < c.cfg.MaxZoom:
		c.Zoom = min(snap(c.Zoom+step, step), c.cfg.MaxZoom)
	case wheel < 0 && c.Zoom > c.cfg.MinZoom:
		c.Zoom = max(snap(c.Zoom-step, step), c.cfg.MinZoom)
	}
}

// snap rounds z to the nearest multiple of step, so that repeated zoom steps
// don't accumulate rounding error.
func snap(z, step float64) float64 {
	return math.Round(z/step) * step
}

// updateViewport recomputes the visible world rectangle. An empty screen,
// as seen before the first frame, keeps the previous viewport.
func (c *Camera) updateViewport(screen casteljau.Size) {
	if screen.IsEmpty() {
		return
	}
	origin := casteljau.Pt(c.Target.X-c.Offset.X/c.Zoom, c.Target.Y-c.Offset.Y/c.Zoom)
	c.viewport = casteljau.NewRectFromOrigin(origin, casteljau.Sz(screen.Width/c.Zoom, screen.Height/c.Zoom))
}

// Reset sets zoom to 1, focuses the camera on ref, and draws ref at the
// center of the screen.
func (c *Camera) Reset(ref casteljau.Point, screen casteljau.Size) {
	c.Zoom = 1
	c.Target = ref
	c.Offset = casteljau.Vec2(screen.Center())
	c.updateViewport(screen)
}
