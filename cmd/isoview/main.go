//go:build ebiten

// Command isoview shows a built-in scalar field and its isoline in a
// window, animated over time.
//
// Controls: arrows pan, W/S zoom, +/- change resolution, space pauses,
// Q or Esc quits.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/isofield"
	"github.com/katalvlaran/isofield/colormap"
	"github.com/katalvlaran/isofield/field"
	"github.com/katalvlaran/isofield/grid"
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

	f, err := field.Lookup(cfg.Field)
	if err != nil {
		logger.Error("isoview", "err", err)
		os.Exit(1)
	}
	res := clampRes(cfg.Res)
	g, err := grid.New(res, res, cfg.Rect(), f)
	if err != nil {
		logger.Error("isoview", "err", err)
		os.Exit(1)
	}
	v, err := isofield.NewVisualizer(g, colormap.DefaultRamp())
	if err != nil {
		logger.Error("isoview", "err", err)
		os.Exit(1)
	}

	game := newGame(v, []float64{cfg.Level}, cfg.TPS)
	ebiten.SetWindowTitle(windowTitle(cfg.Field))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("isoview", "err", err)
		os.Exit(1)
	}
}
