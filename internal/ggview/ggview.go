// Package ggview renders a scene into an offscreen image using gg. It backs
// the command's headless snapshot mode.
package ggview

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/camera"
	"honnef.co/go/casteljau/input"
	"honnef.co/go/casteljau/scene"
)

// Renderer implements scene.Renderer on top of a gg.Context.
//
// gg does not apply its transform to text, so world coordinates are mapped
// through the camera by the renderer itself rather than by the context.
type Renderer struct {
	dc    *gg.Context
	font  *text.FontSource
	faces map[float64]text.Face

	// xf is the active world-to-screen transform, nil in screen space.
	xf *casteljau.Affine
	// err is the first error reported by a fill or stroke.
	err error
}

var _ scene.Renderer = (*Renderer)(nil)

// New returns a renderer drawing into a width×height image.
func New(width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggview: invalid size %dx%d", width, height)
	}
	font, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggview: load font: %w", err)
	}
	return &Renderer{
		dc:    gg.NewContext(width, height),
		font:  font,
		faces: make(map[float64]text.Face),
	}, nil
}

func (r *Renderer) Close() error {
	return r.font.Close()
}

// Size returns the size of the target image.
func (r *Renderer) Size() casteljau.Size {
	return casteljau.Sz(float64(r.dc.Width()), float64(r.dc.Height()))
}

func (r *Renderer) Image() image.Image { return r.dc.Image() }

// Err returns the first error that occurred while drawing.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) check(err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("ggview: draw: %w", err)
	}
}

// EncodePNG writes the image to w. It fails without writing if drawing
// failed.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	return r.dc.EncodePNG(w)
}

// WritePNG saves the image as a PNG file at path. It fails without writing
// if drawing failed.
func (r *Renderer) WritePNG(path string) error {
	if r.err != nil {
		return r.err
	}
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggview: write %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) face(size float64) text.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := r.font.Face(size)
	r.faces[size] = f
	return f
}

func (r *Renderer) pt(p casteljau.Point) casteljau.Point {
	if r.xf == nil {
		return p
	}
	return p.Transform(*r.xf)
}

func (r *Renderer) scale(v float64) float64 {
	if r.xf == nil {
		return v
	}
	return v * r.xf.UniformScale()
}

func (r *Renderer) BeginCamera(cam *camera.Camera) {
	xf := cam.Transform()
	r.xf = &xf
}

func (r *Renderer) EndCamera() { r.xf = nil }

func (r *Renderer) Clear(c color.RGBA) {
	r.dc.ClearWithColor(gg.FromColor(c))
}

func (r *Renderer) Line(a, b casteljau.Point, thickness float64, c color.RGBA) {
	a, b = r.pt(a), r.pt(b)
	r.dc.SetColor(c)
	r.dc.SetLineWidth(r.scale(thickness))
	r.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	r.check(r.dc.Stroke())
}

func (r *Renderer) Circle(center casteljau.Point, radius float64, c color.RGBA) {
	center = r.pt(center)
	r.dc.SetColor(c)
	r.dc.DrawCircle(center.X, center.Y, r.scale(radius))
	r.check(r.dc.Fill())
}

// quad appends the corners of rect, mapped to screen space, to the path.
func (r *Renderer) quad(rect casteljau.Rect) {
	corners := [4]casteljau.Point{
		rect.Origin(),
		casteljau.Pt(rect.MaxX(), rect.Y),
		casteljau.Pt(rect.MaxX(), rect.MaxY()),
		casteljau.Pt(rect.X, rect.MaxY()),
	}
	for i, p := range corners {
		p = r.pt(p)
		if i == 0 {
			r.dc.MoveTo(p.X, p.Y)
		} else {
			r.dc.LineTo(p.X, p.Y)
		}
	}
	r.dc.ClosePath()
}

func (r *Renderer) FillRect(rect casteljau.Rect, c color.RGBA) {
	r.dc.SetColor(c)
	r.quad(rect)
	r.check(r.dc.Fill())
}

func (r *Renderer) StrokeRect(rect casteljau.Rect, thickness float64, c color.RGBA) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(r.scale(thickness))
	r.quad(rect.Inset(thickness / 2))
	r.check(r.dc.Stroke())
}

func (r *Renderer) Text(s string, pt casteljau.Point, size float64, c color.RGBA) {
	pt, size = r.pt(pt), r.scale(size)
	if size <= 0 {
		return
	}
	f := r.face(size)
	r.dc.SetFont(f)
	r.dc.SetColor(c)
	r.dc.DrawString(s, pt.X, pt.Y+f.Metrics().Ascent)
}

func (r *Renderer) MeasureText(s string, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return r.face(size).Advance(s)
}

// Snapshot advances s by frames idle frames of dt seconds each and draws the
// result into r. At least one frame is always run.
func Snapshot(s *scene.Scene, r *Renderer, frames int, dt float64) {
	size := r.Size()
	var in input.State
	for i := 0; i < max(frames, 1); i++ {
		s.Update(in, size, dt)
	}
	s.Draw(r)
}
