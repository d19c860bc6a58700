package main

import (
	"flag"
	"strings"

	"github.com/katalvlaran/isofield/field"
	"github.com/katalvlaran/isofield/grid"
)

// Config holds the viewer's command-line settings.
type Config struct {
	Field   string
	Res     int
	Span    float64
	Level   float64
	Width   int
	Height  int
	TPS     int
	Verbose bool
}

// NewConfig returns the defaults: the wave field on a 64×64 grid over
// [-3,3]², one isoline at 0.5.
func NewConfig() *Config {
	return &Config{Field: "wave", Res: 64, Span: 3, Level: 0.5, Width: 800, Height: 800, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Field, "field", c.Field, "field to show ("+strings.Join(field.Names(), ", ")+")")
	fs.IntVar(&c.Res, "res", c.Res, "cells along each axis")
	fs.Float64Var(&c.Span, "span", c.Span, "half-width of the initial view")
	fs.Float64Var(&c.Level, "level", c.Level, "isoline threshold")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// Rect is the initial view centered on the origin.
func (c *Config) Rect() grid.Rect {
	return grid.Rect{X0: -c.Span, X1: c.Span, Y0: -c.Span, Y1: c.Span}
}
