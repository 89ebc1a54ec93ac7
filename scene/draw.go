package scene

import (
	"fmt"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/camera"
	"honnef.co/go/casteljau/gui"
)

const (
	// WorldSize is the extent of the grid, centered on the origin.
	WorldSize = 12220
	GridSize  = 80
)

type widgetLayout struct {
	checkboxes [6]casteljau.Rect
	labels     [6]string
	slider     casteljau.Rect
	buttons    [3]casteljau.Rect
	buttonText [3]string
}

var layout = func() widgetLayout {
	l := widgetLayout{
		labels:     [6]string{"MODE 1", "MODE 2", "DEBUG MODE", "SHOW GRID", "PAUSE BALL", "Manual Mode"},
		slider:     casteljau.NewRect(80, 240+40*6, 120, 30),
		buttonText: [3]string{"RESET BALL", "RESET POINTS", "RESET CAMERA"},
	}
	for i := range l.checkboxes {
		l.checkboxes[i] = casteljau.NewRect(20, float64(200+40*i), 20, 20)
	}
	for i := range l.buttons {
		l.buttons[i] = casteljau.NewRect(float64(10+110*i), 65, 100, 30)
	}
	return l
}()

// Draw renders the scene as of the last Update.
func (s *Scene) Draw(r Renderer) {
	r.Clear(gui.White)
	s.drawAxes(r)
	if s.Toggles.Grid {
		s.drawGrid(r)
	}

	r.BeginCamera(s.Camera)
	s.drawWorld(r)
	r.EndCamera()

	s.drawOverlay(r)
}

func (s *Scene) drawAxes(r Renderer) {
	w, h := s.screen.Splat()
	r.Line(casteljau.Pt(0, h/2), casteljau.Pt(w, h/2), 6, gui.Red)
	r.Line(casteljau.Pt(w/2, 0), casteljau.Pt(w/2, h), 6, gui.DarkGreen)
	r.Text("x", casteljau.Pt(380, h/2), 32, gui.Red)
	r.Text("y", casteljau.Pt(w/2+10, 300), 32, gui.DarkGreen)
}

// drawGrid draws the grid lines in screen space. The grid spans WorldSize
// but only lines that fall on screen are drawn.
func (s *Scene) drawGrid(r Renderer) {
	w, h := s.screen.Splat()
	const half = WorldSize / 2
	for x := -half; x <= half; x += GridSize {
		if fx := float64(x); fx >= 0 && fx <= w {
			r.Line(casteljau.Pt(fx, 0), casteljau.Pt(fx, h), 1, gui.DarkGray)
		}
	}
	for y := -half; y <= half; y += GridSize {
		if fy := float64(y); fy >= 0 && fy <= h {
			r.Line(casteljau.Pt(0, fy), casteljau.Pt(w, fy), 1, gui.DarkGray)
		}
	}
}

func drawPoint(r Renderer, p ControlPoint) {
	r.Circle(p.Pos, p.Radius, p.Color)
	r.Text(p.Pos.DisplayString(), p.Pos.Translate(casteljau.Vec(10, 0)), 12, gui.Black)
}

func (s *Scene) drawWorld(r Renderer) {
	for _, p := range s.Points {
		drawPoint(r, p)
		r.Text(p.Label, p.Pos, 20, gui.Red)
	}
	for _, l := range s.Curve().ControlPolygon() {
		r.Line(l.P0, l.P1, 1, gui.Green)
	}

	pts := s.Curve().Sample(s.opts.CurveSegments)
	for i := 1; i < len(pts); i++ {
		r.Line(pts[i-1], pts[i], 1, gui.Black)
	}

	r.Text(s.Ball.Pos.DisplayString(), s.Ball.Pos.Translate(casteljau.Vec(-30, -40)), 14, gui.Black)

	r.Circle(s.pointer, 8, gui.Brown)

	c := s.construction
	for i, pt := range c.Points() {
		r.Circle(pt, 12, gui.Pink)
		r.Text(string(rune('A'+i)), pt, 14, gui.Black)
	}
	for _, l := range c.Segments() {
		r.Line(l.P0, l.P1, 1, gui.Purple)
	}

	drawPoint(r, s.Ball)

	if s.Toggles.Debug {
		for _, zone := range camera.EdgeZones(s.Camera.Viewport()) {
			r.FillRect(zone, gui.Red)
		}
	}
}

func (s *Scene) drawOverlay(r Renderer) {
	l := layout
	values := [6]bool{
		s.Toggles.MoveAllDamped,
		s.Toggles.MoveAllDirect,
		s.Toggles.Debug,
		s.Toggles.Grid,
		s.Toggles.PauseBall,
		s.Toggles.Manual,
	}
	for i, rect := range l.checkboxes {
		gui.DrawCheckbox(r, rect, l.labels[i], values[i], gui.Hovered(rect, s.in))
	}
	if s.Toggles.Manual {
		gui.DrawSlider(r, l.slider, "MT Slider", fmt.Sprintf("%f", s.Anim.T), s.Anim.T, 0, 1)
	}

	r.Text(s.opts.Title, casteljau.Pt(20, 10), 24, gui.Black)
	for i, rect := range l.buttons {
		gui.DrawButton(r, rect, l.buttonText[i], gui.Hovered(rect, s.in))
	}

	r.Text(fmt.Sprintf("%d FPS", int(s.fps+0.5)), casteljau.Pt(s.screen.Width-100, 10), 20, gui.Lime)
}
