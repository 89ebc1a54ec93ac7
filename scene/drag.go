package scene

import (
	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/input"
)

// Drag is the drag-lock state machine. At most one point is locked at a time.
type Drag struct {
	Active bool
	// LockedID is the ID of the locked point, or -1.
	LockedID int
}

func NewDrag() Drag {
	return Drag{LockedID: -1}
}

// HitRadius returns the radius within which the pointer hits p. It is tripled
// while a drag is active.
func (d *Drag) HitRadius(p ControlPoint) float64 {
	if d.Active {
		return p.Radius * 3
	}
	return p.Radius
}

// Update runs one frame of the state machine over points, in order.
//
// While idle, the first point under the pointer with the primary button held
// becomes locked. Releasing the primary button unlocks unconditionally. The
// locked point is moved to pointer, which must be in world space, and a
// DragMoved event is emitted for it every frame.
func (d *Drag) Update(points []ControlPoint, pointer casteljau.Point, primary input.Button, sink EventSink) {
	for i := range points {
		p := &points[i]
		if !d.Active && primary.Down && p.Hit(pointer, d.HitRadius(*p)) {
			d.Active = true
			d.LockedID = p.ID
			sink.Emit(Event{Kind: DragStarted, PointID: p.ID, Label: p.Label, Pos: p.Pos})
		} else if primary.Released {
			if d.Active {
				sink.Emit(Event{Kind: DragReleased, PointID: d.LockedID, Label: lockedLabel(points, d.LockedID), Pos: pointer})
			}
			d.Active = false
			d.LockedID = -1
		}

		if d.Active && p.ID == d.LockedID {
			p.Pos = pointer
			sink.Emit(Event{Kind: DragMoved, PointID: p.ID, Label: p.Label, Pos: p.Pos})
		}
	}
}

func lockedLabel(points []ControlPoint, id int) string {
	for _, p := range points {
		if p.ID == id {
			return p.Label
		}
	}
	return ""
}
