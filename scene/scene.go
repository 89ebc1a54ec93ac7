// Package scene implements the Bézier playground: four draggable control
// points, a ball that sweeps back and forth along the curve they define, the
// De Casteljau construction at the ball's parameter, a camera, and the GUI
// overlay that toggles between display modes.
//
// A Scene is a single aggregate that owns all state. Frontends call Update
// once per frame with the frame's input and then Draw with a Renderer.
package scene

import (
	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/camera"
	"honnef.co/go/casteljau/gui"
	"honnef.co/go/casteljau/input"
)

// Options configures a Scene.
type Options struct {
	Title  string
	Camera camera.Config
	// AnimationSpeed is the change of the curve parameter per second.
	AnimationSpeed float64
	// CurveSegments is the number of line segments used to draw the curve.
	CurveSegments int
	ShowGrid      bool
	Debug         bool
}

func DefaultOptions() Options {
	return Options{
		Title:          "Bézier curve",
		Camera:         camera.DefaultConfig(),
		AnimationSpeed: 0.3,
		CurveSegments:  100,
	}
}

// Toggles are the scene's checkbox states.
type Toggles struct {
	MoveAllDamped bool
	MoveAllDirect bool
	Debug         bool
	Grid          bool
	PauseBall     bool
	Manual        bool
}

// Actions are the buttons clicked in a frame.
type Actions struct {
	ResetBall   bool
	ResetPoints bool
	ResetCamera bool
}

type Scene struct {
	Points  [4]ControlPoint
	Ball    ControlPoint
	Camera  *camera.Camera
	Anim    Animation
	Drag    Drag
	MoveAll MoveAll
	Toggles Toggles

	opts         Options
	sink         EventSink
	in           input.State
	screen       casteljau.Size
	pointer      casteljau.Point
	construction casteljau.Construction
	fps          float64
	sliderActive bool
}

// New returns a scene with the control points at their initial positions.
// Events are sent to sink, which may be nil.
func New(opts Options, sink EventSink) *Scene {
	if sink == nil {
		sink = Discard
	}
	points := InitialPoints()
	s := &Scene{
		Points: points,
		Ball:   NewBall(points[0].Pos),
		Camera: camera.New(opts.Camera),
		Anim:   NewAnimation(opts.AnimationSpeed),
		Drag:   NewDrag(),
		Toggles: Toggles{
			Grid:  opts.ShowGrid,
			Debug: opts.Debug,
		},
		opts: opts,
		sink: sink,
	}
	s.construction = s.Curve().Construct(0)
	return s
}

// Curve returns the cubic Bézier defined by the control points.
func (s *Scene) Curve() casteljau.CubicBez {
	return casteljau.CubicBez{
		P0: s.Points[0].Pos,
		P1: s.Points[1].Pos,
		P2: s.Points[2].Pos,
		P3: s.Points[3].Pos,
	}
}

// Construction returns the De Casteljau construction at the ball's current
// parameter.
func (s *Scene) Construction() casteljau.Construction {
	return s.construction
}

// Pointer returns the pointer position in world space as of the last update.
func (s *Scene) Pointer() casteljau.Point {
	return s.pointer
}

// Update advances the scene by one frame of dt seconds.
func (s *Scene) Update(in input.State, screen casteljau.Size, dt float64) {
	s.in = in
	s.screen = screen
	s.updateFPS(dt)

	actions := s.evalWidgets(in)

	s.Camera.Update(in, screen)
	s.pointer = s.Camera.ScreenToWorld(in.Pointer)

	s.Anim.Paused = s.Toggles.PauseBall
	s.Anim.Manual = s.Toggles.Manual
	s.Anim.Advance(dt)

	s.MoveAll.Damped = s.Toggles.MoveAllDamped
	s.MoveAll.Direct = s.Toggles.MoveAllDirect
	s.MoveAll.Apply(s.Points[:], s.opts.AnimationSpeed*dt, dt)

	s.Drag.Update(s.Points[:], s.pointer, in.Primary, s.sink)

	if actions.ResetBall {
		s.ResetBall()
	}
	if actions.ResetPoints {
		s.ResetPoints()
	}
	if actions.ResetCamera {
		s.ResetCamera()
	}

	curve := s.Curve()
	s.construction = curve.Construct(s.Anim.T)
	s.Ball.Pos = curve.Eval(s.Anim.T)
}

func (s *Scene) evalWidgets(in input.State) Actions {
	l := layout
	tg := &s.Toggles
	for i, b := range []*bool{&tg.MoveAllDamped, &tg.MoveAllDirect, &tg.Debug, &tg.Grid, &tg.PauseBall, &tg.Manual} {
		*b = gui.Checkbox(l.checkboxes[i], *b, in)
	}
	if tg.Manual {
		var t float64
		t, s.sliderActive = gui.Slider(l.slider, s.Anim.T, 0, 1, s.sliderActive, in)
		s.Anim.Set(t)
	} else {
		s.sliderActive = false
	}
	return Actions{
		ResetBall:   gui.Button(l.buttons[0], in),
		ResetPoints: gui.Button(l.buttons[1], in),
		ResetCamera: gui.Button(l.buttons[2], in),
	}
}

func (s *Scene) updateFPS(dt float64) {
	if dt <= 0 {
		return
	}
	if s.fps == 0 {
		s.fps = 1 / dt
		return
	}
	s.fps = 0.9*s.fps + 0.1/dt
}

// ResetBall moves the ball back to p0 and restarts the sweep.
func (s *Scene) ResetBall() {
	s.Ball.Pos = s.Points[0].Pos
	s.Anim.T = 0
	s.sink.Emit(Event{Kind: BallReset, PointID: s.Ball.ID, Label: s.Ball.Label, Pos: s.Ball.Pos})
}

// ResetPoints restores the control points to their initial positions.
func (s *Scene) ResetPoints() {
	s.Points = InitialPoints()
	s.sink.Emit(Event{Kind: PointsReset, PointID: s.Points[0].ID, Label: s.Points[0].Label, Pos: s.Points[0].Pos})
}

// ResetCamera focuses the camera on p0 at zoom 1.
func (s *Scene) ResetCamera() {
	s.Camera.Reset(s.Points[0].Pos, s.screen)
	s.sink.Emit(Event{Kind: CameraReset, Pos: s.Camera.Target})
}
