package main

import (
	"github.com/katalvlaran/isofield"
	"github.com/katalvlaran/isofield/grid"
	"github.com/katalvlaran/isofield/matrix"
)

const (
	minRes  = 1
	maxRes  = 254 // (254+1)² lattice points still fit 16-bit triangle indices
	resStep = 4
)

// pan shifts r by fractions fx, fy of its width and height.
func pan(r grid.Rect, fx, fy float64) grid.Rect {
	dx, dy := (r.X1-r.X0)*fx, (r.Y1-r.Y0)*fy
	return grid.Rect{X0: r.X0 + dx, X1: r.X1 + dx, Y0: r.Y0 + dy, Y1: r.Y1 + dy}
}

// zoom scales r about its center. factor < 1 zooms in.
func zoom(r grid.Rect, factor float64) grid.Rect {
	cx, cy := (r.X0+r.X1)/2, (r.Y0+r.Y1)/2
	hx, hy := (r.X1-r.X0)/2*factor, (r.Y1-r.Y0)/2*factor
	return grid.Rect{X0: cx - hx, X1: cx + hx, Y0: cy - hy, Y1: cy + hy}
}

func clampRes(n int) int {
	return min(max(n, minRes), maxRes)
}

// toScreen maps a world point through m onto a w×h screen with +y up.
func toScreen(m matrix.Mat4, p grid.Point, w, h float64) (float32, float32) {
	nx, ny, _ := m.Apply(p.X, p.Y, 0)
	return float32((nx + 1) / 2 * w), float32((1 - ny) / 2 * h)
}

func windowTitle(field string) string {
	return "isoview: " + field
}

// applyView moves v to a w×h grid over r, or samples at t when nothing
// changed. Configure resamples an already sampled grid at its previous
// time, so every call evaluates the field exactly once and a view change
// shows t one tick late.
func applyView(v *isofield.Visualizer, w, h int, r grid.Rect, t float64) error {
	eng := v.Grid()
	ww, hh := eng.Resolution()
	if r == eng.Rect() && w == ww && h == hh {
		v.SampleAt(t)
		return nil
	}
	sampled := eng.Sampled()
	if err := v.Configure(w, h, r); err != nil {
		return err
	}
	if !sampled {
		v.SampleAt(t)
	}

	return nil
}
