// Command casteljau is an interactive playground for the De Casteljau
// construction of a cubic Bézier curve.
//
// Usage:
//
//	casteljau [-config file.yaml] [-snapshot out.png] [-frames N]
//
// Without -snapshot it opens a window. Drag the control points with the left
// mouse button, pan with WASD (hold space to pan faster), hold the right
// mouse button to recenter on the pointer or scroll at the window edges, and
// zoom with the wheel.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"honnef.co/go/casteljau/internal/config"
	"honnef.co/go/casteljau/internal/ggview"
	"honnef.co/go/casteljau/internal/logging"
	"honnef.co/go/casteljau/internal/rlview"
	"honnef.co/go/casteljau/scene"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML configuration file")
		snapshot   = flag.String("snapshot", "", "render headlessly into this PNG file instead of opening a window")
		frames     = flag.Int("frames", 60, "number of frames to simulate before taking a snapshot")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "casteljau: %s\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "casteljau: %s\n", err)
		os.Exit(2)
	}
	defer logger.Sync()

	s := scene.New(cfg.SceneOptions(), logging.EventLogger{Logger: logger})

	if *snapshot != "" {
		if err := writeSnapshot(s, cfg, *snapshot, *frames); err != nil {
			logger.Fatal("snapshot failed", zap.Error(err))
		}
		logger.Info("snapshot written", zap.String("path", *snapshot), zap.Int("frames", *frames))
		return
	}

	rlview.Run(s, rlview.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
	}, logger)
}

func writeSnapshot(s *scene.Scene, cfg *config.Config, path string, frames int) error {
	r, err := ggview.New(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	defer r.Close()

	ggview.Snapshot(s, r, frames, 1/float64(cfg.Window.TargetFPS))
	return r.WritePNG(path)
}
