// Package config loads the playground's settings: built-in defaults, then an
// optional YAML file, then CASTELJAU_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"honnef.co/go/casteljau/camera"
	"honnef.co/go/casteljau/scene"
)

// EnvPrefix is the prefix of all environment variables read by Load.
const EnvPrefix = "CASTELJAU"

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Window    Window    `yaml:"window" envconfig:"WINDOW"`
	Camera    Camera    `yaml:"camera" envconfig:"CAMERA"`
	Animation Animation `yaml:"animation" envconfig:"ANIMATION"`
	Log       Log       `yaml:"log" envconfig:"LOG"`
}

type Window struct {
	Width     int    `yaml:"width" envconfig:"WIDTH"`
	Height    int    `yaml:"height" envconfig:"HEIGHT"`
	Title     string `yaml:"title" envconfig:"TITLE"`
	TargetFPS int    `yaml:"target_fps" envconfig:"TARGET_FPS"`
}

type Camera struct {
	Speed     float64 `yaml:"speed" envconfig:"SPEED"`
	FastSpeed float64 `yaml:"fast_speed" envconfig:"FAST_SPEED"`
	Smoothing float64 `yaml:"smoothing" envconfig:"SMOOTHING"`
	ZoomStep  float64 `yaml:"zoom_step" envconfig:"ZOOM_STEP"`
	MinZoom   float64 `yaml:"min_zoom" envconfig:"MIN_ZOOM"`
	MaxZoom   float64 `yaml:"max_zoom" envconfig:"MAX_ZOOM"`
}

type Animation struct {
	Speed         float64 `yaml:"speed" envconfig:"SPEED"`
	CurveSegments int     `yaml:"curve_segments" envconfig:"CURVE_SEGMENTS"`
	ShowGrid      bool    `yaml:"show_grid" envconfig:"SHOW_GRID"`
	Debug         bool    `yaml:"debug" envconfig:"DEBUG"`
}

type Log struct {
	Level       string `yaml:"level" envconfig:"LEVEL"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// Default returns the built-in configuration.
func Default() Config {
	cam := camera.DefaultConfig()
	opts := scene.DefaultOptions()
	return Config{
		Window: Window{
			Width:     940,
			Height:    720,
			Title:     opts.Title,
			TargetFPS: 120,
		},
		Camera: Camera{
			Speed:     cam.Speed,
			FastSpeed: cam.FastSpeed,
			Smoothing: cam.Smoothing,
			ZoomStep:  cam.ZoomStep,
			MinZoom:   cam.MinZoom,
			MaxZoom:   cam.MaxZoom,
		},
		Animation: Animation{
			Speed:         opts.AnimationSpeed,
			CurveSegments: opts.CurveSegments,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load returns the configuration from path layered over the defaults, with
// environment overrides applied last. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that would break the scene.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS <= 0:
		return fmt.Errorf("%w: target fps %d", ErrInvalid, c.Window.TargetFPS)
	case c.Camera.ZoomStep <= 0:
		return fmt.Errorf("%w: zoom step %g", ErrInvalid, c.Camera.ZoomStep)
	case c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom:
		return fmt.Errorf("%w: zoom range [%g, %g]", ErrInvalid, c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Camera.Smoothing < 0 || c.Camera.Smoothing > 1:
		return fmt.Errorf("%w: camera smoothing %g", ErrInvalid, c.Camera.Smoothing)
	case c.Animation.Speed < 0:
		return fmt.Errorf("%w: animation speed %g", ErrInvalid, c.Animation.Speed)
	case c.Animation.CurveSegments < 1:
		return fmt.Errorf("%w: curve segments %d", ErrInvalid, c.Animation.CurveSegments)
	}
	return nil
}

// SceneOptions converts the configuration into scene options.
func (c *Config) SceneOptions() scene.Options {
	return scene.Options{
		Title: c.Window.Title,
		Camera: camera.Config{
			Speed:     c.Camera.Speed,
			FastSpeed: c.Camera.FastSpeed,
			Smoothing: c.Camera.Smoothing,
			ZoomStep:  c.Camera.ZoomStep,
			MinZoom:   c.Camera.MinZoom,
			MaxZoom:   c.Camera.MaxZoom,
		},
		AnimationSpeed: c.Animation.Speed,
		CurveSegments:  c.Animation.CurveSegments,
		ShowGrid:       c.Animation.ShowGrid,
		Debug:          c.Animation.Debug,
	}
}
