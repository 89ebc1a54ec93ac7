package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/casteljau/camera"
	"honnef.co/go/casteljau/scene"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "casteljau.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, scene.DefaultOptions(), cfg.SceneOptions())
	assert.Equal(t, camera.DefaultConfig(), cfg.SceneOptions().Camera)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
  title: Playground
camera:
  max_zoom: 5
animation:
  show_grid: true
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "unset fields keep their defaults")
	assert.Equal(t, "Playground", cfg.Window.Title)
	assert.Equal(t, 5.0, cfg.Camera.MaxZoom)
	assert.Equal(t, 0.1, cfg.Camera.MinZoom)
	assert.True(t, cfg.Animation.ShowGrid)
	assert.Equal(t, "debug", cfg.Log.Level)

	opts := cfg.SceneOptions()
	assert.True(t, opts.ShowGrid)
	assert.Equal(t, "Playground", opts.Title)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "window:\n  width: 1280\n")
	t.Setenv("CASTELJAU_WINDOW_WIDTH", "640")
	t.Setenv("CASTELJAU_ANIMATION_SPEED", "0.5")
	t.Setenv("CASTELJAU_LOG_DEVELOPMENT", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 0.5, cfg.Animation.Speed)
	assert.True(t, cfg.Log.Development)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "window:\n  colour: red\n"))
	require.Error(t, err, "unknown fields are rejected")

	_, err = Load(writeConfig(t, "camera:\n  min_zoom: 0\n"))
	require.ErrorIs(t, err, ErrInvalid)

	t.Setenv("CASTELJAU_WINDOW_TARGET_FPS", "many")
	_, err = Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative fps", func(c *Config) { c.Window.TargetFPS = -1 }},
		{"zero zoom step", func(c *Config) { c.Camera.ZoomStep = 0 }},
		{"inverted zoom range", func(c *Config) { c.Camera.MaxZoom = 0.05 }},
		{"smoothing above one", func(c *Config) { c.Camera.Smoothing = 1.5 }},
		{"negative speed", func(c *Config) { c.Animation.Speed = -0.3 }},
		{"no segments", func(c *Config) { c.Animation.CurveSegments = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}
