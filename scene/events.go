package scene

import (
	"fmt"

	"honnef.co/go/casteljau"
)

type EventKind int

const (
	DragStarted EventKind = iota
	DragMoved
	DragReleased
	BallReset
	PointsReset
	CameraReset
)

var eventKindNames = [...]string{
	DragStarted:  "drag started",
	DragMoved:    "drag moved",
	DragReleased: "drag released",
	BallReset:    "ball reset",
	PointsReset:  "points reset",
	CameraReset:  "camera reset",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventKindNames[k]
}

// Event is emitted by the scene for things worth observing. PointID, Label
// and Pos describe the affected point for drag events; for reset events they
// describe p0 or the camera target.
type Event struct {
	Kind    EventKind
	PointID int
	Label   string
	Pos     casteljau.Point
}

func (e Event) String() string {
	if e.Label == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Pos.DisplayString())
	}
	return fmt.Sprintf("%s %s: %s", e.Kind, e.Label, e.Pos.DisplayString())
}

// EventSink receives scene events.
type EventSink interface {
	Emit(Event)
}

// EventFunc adapts a function to an EventSink.
type EventFunc func(Event)

func (f EventFunc) Emit(e Event) { f(e) }

// Discard is an EventSink that drops all events.
var Discard EventSink = EventFunc(func(Event) {})
