// Command isoplot renders a built-in scalar field with its isolines into
// a numbered series of PNG files.
//
//	isoplot -field wave -w 60 -h 60 -frames 30 -dt 0.05 -levels=-1,0,1 -out wave
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/isofield"
	"github.com/katalvlaran/isofield/colormap"
	"github.com/katalvlaran/isofield/field"
	"github.com/katalvlaran/isofield/grid"
	"github.com/katalvlaran/isofield/render"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	isofield.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("isoplot failed", "err", err)
		os.Exit(1)
	}
}

// run writes cfg.Frames images and returns the first error.
func run(cfg *Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f, err := field.Lookup(cfg.Field)
	if err != nil {
		return err
	}
	g, err := grid.New(cfg.W, cfg.H, cfg.Rect(), f)
	if err != nil {
		return err
	}
	v, err := isofield.NewVisualizer(g, colormap.DefaultRamp())
	if err != nil {
		return err
	}

	opts := []render.Option{
		render.WithSize(cfg.Pixels, cfg.Pixels),
		render.WithSupersample(cfg.Supersample),
		render.WithLabel(cfg.Label),
	}
	for i := 0; i < cfg.Frames; i++ {
		t := cfg.T + float64(i)*cfg.DT
		v.SampleAt(t)
		frame, err := v.Frame(cfg.Levels)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		img, err := render.Draw(frame, opts...)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		name := cfg.FrameName(i)
		if err := render.SavePNG(name, img); err != nil {
			return err
		}
		logger.Info("wrote frame", "file", name, "t", t, "isolines", len(frame.Isolines))
	}

	return nil
}
