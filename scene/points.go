package scene

import (
	"image/color"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/gui"
)

// PointRadius is the drawn and hit-test radius of control points and the ball.
const PointRadius = 20

// ControlPoint is a labeled, colored point. The four control points of the
// curve are draggable; the ball only follows the curve.
type ControlPoint struct {
	ID     int
	Pos    casteljau.Point
	Radius float64
	Color  color.RGBA
	Label  string
}

// InitialPoints returns the control points p0 to p3 at their starting
// positions.
func InitialPoints() [4]ControlPoint {
	pt := func(id int, x, y float64) ControlPoint {
		return ControlPoint{
			ID:     id,
			Pos:    casteljau.Pt(x*1.5, y*2),
			Radius: PointRadius,
			Color:  gui.Green,
			Label:  "p" + string(rune('0'+id)),
		}
	}
	return [4]ControlPoint{
		pt(0, 100, 200),
		pt(1, 80, 100),
		pt(2, 320, 100),
		pt(3, 300, 200),
	}
}

// NewBall returns the ball resting at pos.
func NewBall(pos casteljau.Point) ControlPoint {
	return ControlPoint{
		ID:     -1,
		Pos:    pos,
		Radius: PointRadius,
		Color:  gui.Blue,
		Label:  "Ball",
	}
}

// Hit reports whether pt lies within r of the point's position.
func (p ControlPoint) Hit(pt casteljau.Point, r float64) bool {
	return pt.InCircle(p.Pos, r)
}
