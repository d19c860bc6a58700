package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/isofield/field"
	"github.com/katalvlaran/isofield/grid"
)

// Config holds the command-line settings for a plotting run.
type Config struct {
	Field       string
	W, H        int
	X0, X1      float64
	Y0, Y1      float64
	T, DT       float64
	Frames      int
	Levels      Levels
	Pixels      int
	Supersample int
	Label       bool
	Out         string
	Verbose     bool
}

// NewConfig returns the defaults: one 512px frame of the wave field over
// [-3,3]² with isolines at -1, 0 and 1.
func NewConfig() *Config {
	return &Config{
		Field:       "wave",
		W:           40,
		H:           40,
		X0:          -3,
		X1:          3,
		Y0:          -3,
		Y1:          3,
		DT:          0.1,
		Frames:      1,
		Levels:      Levels{-1, 0, 1},
		Pixels:      512,
		Supersample: 2,
		Out:         "frame",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Field, "field", c.Field, "field to plot ("+strings.Join(field.Names(), ", ")+")")
	fs.IntVar(&c.W, "w", c.W, "cells along x")
	fs.IntVar(&c.H, "h", c.H, "cells along y")
	fs.Float64Var(&c.X0, "x0", c.X0, "left bound")
	fs.Float64Var(&c.X1, "x1", c.X1, "right bound")
	fs.Float64Var(&c.Y0, "y0", c.Y0, "bottom bound")
	fs.Float64Var(&c.Y1, "y1", c.Y1, "top bound")
	fs.Float64Var(&c.T, "t", c.T, "time of the first frame")
	fs.Float64Var(&c.DT, "dt", c.DT, "time step between frames")
	fs.IntVar(&c.Frames, "frames", c.Frames, "number of frames to write")
	fs.Var(&c.Levels, "levels", "comma-separated isoline thresholds")
	fs.IntVar(&c.Pixels, "px", c.Pixels, "image width and height in pixels")
	fs.IntVar(&c.Supersample, "ss", c.Supersample, "supersampling factor")
	fs.BoolVar(&c.Label, "label", c.Label, "stamp the frame time into each image")
	fs.StringVar(&c.Out, "out", c.Out, "output file prefix")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// Rect returns the sampled rectangle.
func (c *Config) Rect() grid.Rect {
	return grid.Rect{X0: c.X0, X1: c.X1, Y0: c.Y0, Y1: c.Y1}
}

// Validate rejects settings no run can use. Grid and rectangle errors are
// left to the engine.
func (c *Config) Validate() error {
	switch {
	case c.Frames < 1:
		return errors.New("frames must be at least 1")
	case c.Pixels < 1:
		return errors.New("px must be positive")
	case c.Out == "":
		return errors.New("out must not be empty")
	}

	return nil
}

// FrameName is the file written for frame i.
func (c *Config) FrameName(i int) string {
	return fmt.Sprintf("%s_%03d.png", c.Out, i)
}

// Levels is a flag.Value holding comma-separated thresholds.
type Levels []float64

func (l *Levels) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}

// Set replaces the list. An empty string clears it.
func (l *Levels) Set(s string) error {
	out := Levels{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("level %q: %w", part, err)
		}
		out = append(out, v)
	}
	*l = out

	return nil
}
