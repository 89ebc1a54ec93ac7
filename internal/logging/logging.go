// Package logging builds the application's zap logger and adapts it to the
// scene's event stream.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/casteljau/scene"
)

// New returns a logger at the named level ("debug", "info", "warn",
// "error"). Development loggers write colored console output; others write
// JSON to stderr.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(lvl),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	if development {
		config.Development = true
		config.Sampling = nil
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// EventLogger is a scene.EventSink that writes events to a logger. Drag
// movement is logged at debug level since it is emitted every frame.
type EventLogger struct {
	Logger *zap.Logger
}

var _ scene.EventSink = EventLogger{}

func (l EventLogger) Emit(e scene.Event) {
	fields := []zap.Field{
		zap.Stringer("kind", e.Kind),
		zap.Float64("x", e.Pos.X),
		zap.Float64("y", e.Pos.Y),
	}
	if e.Label != "" {
		fields = append(fields, zap.String("point", e.Label), zap.Int("id", e.PointID))
	}

	lvl := zapcore.InfoLevel
	if e.Kind == scene.DragMoved {
		lvl = zapcore.DebugLevel
	}
	l.Logger.Log(lvl, e.String(), fields...)
}
