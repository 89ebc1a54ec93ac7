package rlview

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/camera"
	"honnef.co/go/casteljau/input"
)

func TestCamera2D(t *testing.T) {
	cam := camera.New(camera.DefaultConfig())
	cam.Offset = casteljau.Vec2{X: 470, Y: 360}
	cam.Target = casteljau.Pt(150, 400)
	cam.Rotation = math.Pi / 2
	cam.Zoom = 1.5

	got := Camera2D(cam)
	assert.Equal(t, rl.NewVector2(470, 360), got.Offset)
	assert.Equal(t, rl.NewVector2(150, 400), got.Target)
	assert.InDelta(t, 90, got.Rotation, 1e-4)
	assert.Equal(t, float32(1.5), got.Zoom)
}

func TestRect(t *testing.T) {
	assert.Equal(t, rl.NewRectangle(10, 65, 100, 30), rect(casteljau.NewRect(10, 65, 100, 30)))
}

func TestKeyBindings(t *testing.T) {
	var all input.Keys
	for _, b := range keyBindings {
		assert.Zero(t, all&b.k, "key %v bound twice", b.k)
		all |= b.k
	}
	assert.Equal(t, input.KeyUp|input.KeyDown|input.KeyLeft|input.KeyRight|input.KeyFast, all)
	assert.Equal(t, int32(rl.KeyW), keyBindings[0].key)
}
