// Package rlview runs a scene in a raylib window.
package rlview

import (
	"image/color"
	"math"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/camera"
	"honnef.co/go/casteljau/input"
	"honnef.co/go/casteljau/scene"
)

type Options struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
}

// Run opens a window and drives s until the window is closed. It must be
// called from the main goroutine.
func Run(s *scene.Scene, opts Options, logger *zap.Logger) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.TargetFPS))

	logger.Info("window opened",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Int("target_fps", opts.TargetFPS))

	var r Renderer
	for !rl.WindowShouldClose() {
		in := Poll()
		screen := casteljau.Sz(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		s.Update(in, screen, float64(rl.GetFrameTime()))

		rl.BeginDrawing()
		s.Draw(&r)
		rl.EndDrawing()
	}
	logger.Info("window closed")
}

var keyBindings = [...]struct {
	k   input.Keys
	key int32
}{
	{input.KeyUp, rl.KeyW},
	{input.KeyDown, rl.KeyS},
	{input.KeyLeft, rl.KeyA},
	{input.KeyRight, rl.KeyD},
	{input.KeyFast, rl.KeySpace},
}

// Poll returns the input state of the current frame.
func Poll() input.State {
	var keys input.Keys
	for _, b := range keyBindings {
		if rl.IsKeyDown(b.key) {
			keys |= b.k
		}
	}

	mouse := rl.GetMousePosition()
	return input.State{
		Keys:      keys,
		Pointer:   casteljau.Pt(float64(mouse.X), float64(mouse.Y)),
		Primary:   button(rl.MouseButtonLeft),
		Secondary: button(rl.MouseButtonRight),
		Wheel:     float64(rl.GetMouseWheelMove()),
	}
}

func button(b rl.MouseButton) input.Button {
	return input.Button{
		Down:     rl.IsMouseButtonDown(b),
		Pressed:  rl.IsMouseButtonPressed(b),
		Released: rl.IsMouseButtonReleased(b),
	}
}

// Camera2D converts cam to raylib's camera representation.
func Camera2D(cam *camera.Camera) rl.Camera2D {
	return rl.Camera2D{
		Offset:   vec(casteljau.Point(cam.Offset)),
		Target:   vec(cam.Target),
		Rotation: float32(cam.Rotation * 180 / math.Pi),
		Zoom:     float32(cam.Zoom),
	}
}

func vec(p casteljau.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func rect(r casteljau.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height))
}

// Renderer implements scene.Renderer with raylib's immediate drawing
// functions. It is only valid between rl.BeginDrawing and rl.EndDrawing.
type Renderer struct{}

var _ scene.Renderer = (*Renderer)(nil)

func (*Renderer) Clear(c color.RGBA) { rl.ClearBackground(c) }

func (*Renderer) Line(a, b casteljau.Point, thickness float64, c color.RGBA) {
	rl.DrawLineEx(vec(a), vec(b), float32(thickness), c)
}

func (*Renderer) Circle(center casteljau.Point, radius float64, c color.RGBA) {
	rl.DrawCircleV(vec(center), float32(radius), c)
}

func (*Renderer) FillRect(r casteljau.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rect(r), c)
}

func (*Renderer) StrokeRect(r casteljau.Rect, thickness float64, c color.RGBA) {
	rl.DrawRectangleLinesEx(rect(r), float32(thickness), c)
}

func (*Renderer) Text(s string, pt casteljau.Point, size float64, c color.RGBA) {
	rl.DrawText(s, int32(pt.X), int32(pt.Y), int32(size), c)
}

func (*Renderer) MeasureText(s string, size float64) float64 {
	return float64(rl.MeasureText(s, int32(size)))
}

func (*Renderer) BeginCamera(cam *camera.Camera) { rl.BeginMode2D(Camera2D(cam)) }

func (*Renderer) EndCamera() { rl.EndMode2D() }
