package scene

import (
	"image/color"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/camera"
	"honnef.co/go/casteljau/gui"
)

// Renderer is the drawing backend of a scene. Between BeginCamera and
// EndCamera coordinates are in world space and are mapped through the
// camera; otherwise they are in screen space.
type Renderer interface {
	gui.Canvas
	Clear(c color.RGBA)
	Line(a, b casteljau.Point, thickness float64, c color.RGBA)
	Circle(center casteljau.Point, radius float64, c color.RGBA)
	BeginCamera(cam *camera.Camera)
	EndCamera()
}
