package camera

import "honnef.co/go/casteljau"

// Edge identifies one of the four edge zones of a viewport.
type Edge int

const (
	EdgeBottom Edge = iota
	EdgeTop
	EdgeRight
	EdgeLeft
)

// EdgeFraction is the share of the viewport's area covered by each edge zone.
const EdgeFraction = 0.1

var edgeNames = [...]string{"bottom", "top", "right", "left"}

func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return "invalid"
	}
	return edgeNames[e]
}

// Direction returns the unit pan direction associated with the edge, in a
// y-down space.
func (e Edge) Direction() casteljau.Vec2 {
	switch e {
	case EdgeBottom:
		return casteljau.Vec(0, 1)
	case EdgeTop:
		return casteljau.Vec(0, -1)
	case EdgeRight:
		return casteljau.Vec(1, 0)
	case EdgeLeft:
		return casteljau.Vec(-1, 0)
	default:
		return casteljau.Vec2{}
	}
}

// EdgeZone returns the strip along edge e of r that covers EdgeFraction of
// r's area. The strip spans r's full extent along the edge; its thickness is
// the strip's area divided by that extent.
//
// Rectangles with zero or negative area produce an empty strip at r's origin.
func EdgeZone(r casteljau.Rect, e Edge) casteljau.Rect {
	if r.IsEmpty() {
		return casteljau.Rect{X: r.X, Y: r.Y}
	}
	area := r.Area()
	strip := area * EdgeFraction
	switch e {
	case EdgeBottom:
		return casteljau.Rect{X: r.X, Y: r.Y + (area-strip)/r.Width, Width: r.Width, Height: strip / r.Width}
	case EdgeTop:
		return casteljau.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: strip / r.Width}
	case EdgeRight:
		return casteljau.Rect{X: r.X + (area-strip)/r.Height, Y: r.Y, Width: strip / r.Height, Height: r.Height}
	case EdgeLeft:
		return casteljau.Rect{X: r.X, Y: r.Y, Width: strip / r.Height, Height: r.Height}
	default:
		return casteljau.Rect{X: r.X, Y: r.Y}
	}
}

// EdgeZones returns all four edge zones of r, indexed by Edge.
func EdgeZones(r casteljau.Rect) [4]casteljau.Rect {
	var out [4]casteljau.Rect
	for e := EdgeBottom; e <= EdgeLeft; e++ {
		out[e] = EdgeZone(r, e)
	}
	return out
}

// EdgeDirection returns the pan displacement for a pointer at pt: the sum of
// speed times the direction of every edge zone of r that contains pt. Opposite
// zones cancel out.
func EdgeDirection(r casteljau.Rect, pt casteljau.Point, speed float64) casteljau.Vec2 {
	var dir casteljau.Vec2
	for e, zone := range EdgeZones(r) {
		if zone.Contains(pt) {
			dir = dir.Add(Edge(e).Direction().Mul(speed))
		}
	}
	return dir
}
