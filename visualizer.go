package isofield

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/isofield/colormap"
	"github.com/katalvlaran/isofield/contour"
	"github.com/katalvlaran/isofield/grid"
	"github.com/katalvlaran/isofield/matrix"
)

// Visualizer drives a grid engine and derives per-vertex colors and
// isolines from its current samples.
type Visualizer struct {
	grid *grid.Engine
	ramp *colormap.Ramp
}

// Frame is a self-contained snapshot of everything needed to draw one
// image: mesh, colors, isolines and the device transform.
type Frame struct {
	Time      float64
	Lattice   grid.Lattice
	Points    []grid.Point
	Indices   []uint32
	Colors    []color.RGBA
	Isolines  []contour.Isoline
	Transform matrix.Mat4
}

// NewVisualizer wraps g. A nil ramp selects colormap.DefaultRamp.
// Returns ErrNilEngine.
func NewVisualizer(g *grid.Engine, r *colormap.Ramp) (*Visualizer, error) {
	if g == nil {
		return nil, ErrNilEngine
	}
	if r == nil {
		r = colormap.DefaultRamp()
	}

	return &Visualizer{grid: g, ramp: r}, nil
}

// Grid returns the underlying engine.
func (v *Visualizer) Grid() *grid.Engine { return v.grid }

// Ramp returns the color ramp.
func (v *Visualizer) Ramp() *colormap.Ramp { return v.ramp }

// Configure changes resolution and rectangle. See grid.Engine.Configure.
func (v *Visualizer) Configure(w, h int, r grid.Rect) error {
	return v.grid.Configure(w, h, r)
}

// Resize changes resolution and keeps the rectangle.
func (v *Visualizer) Resize(w, h int) error {
	return v.grid.Resize(w, h)
}

// SampleAt resamples the field at time t.
func (v *Visualizer) SampleAt(t float64) { v.grid.SampleAt(t) }

// Points returns a copy of the lattice positions.
func (v *Visualizer) Points() []grid.Point { return v.grid.Points() }

// Indices returns a copy of the triangle index buffer.
func (v *Visualizer) Indices() []uint32 { return v.grid.Indices() }

// Transform returns the rectangle-to-[-1,1]² transform.
func (v *Visualizer) Transform() matrix.Mat4 { return v.grid.Transform() }

// Colors maps every current sample through the ramp, in point order.
// Returns ErrNotSampled before the first SampleAt.
func (v *Visualizer) Colors() ([]color.RGBA, error) {
	if !v.grid.Sampled() {
		return nil, ErrNotSampled
	}

	return v.ramp.ColorsFor(v.grid.Samples()), nil
}

// Isolines extracts the contours of the current samples for each
// threshold, in threshold order.
// Returns ErrNotSampled before the first SampleAt, or any error from
// contour.Extract.
func (v *Visualizer) Isolines(thresholds []float64) ([]contour.Isoline, error) {
	if !v.grid.Sampled() {
		return nil, ErrNotSampled
	}

	return v.isolines(v.grid.Samples(), thresholds)
}

func (v *Visualizer) isolines(samples, thresholds []float64) ([]contour.Isoline, error) {
	iso, err := contour.Extract(v.grid.Lattice(), samples, thresholds)
	if err != nil {
		return nil, fmt.Errorf("isofield: isolines at t=%g: %w", v.grid.Time(), err)
	}

	return iso, nil
}

// Frame bundles the current mesh, colors and isolines. Colors and
// isolines are derived from one copy of the samples.
// Returns the same errors as Colors and Isolines.
func (v *Visualizer) Frame(thresholds []float64) (Frame, error) {
	if !v.grid.Sampled() {
		return Frame{}, ErrNotSampled
	}
	samples := v.grid.Samples()
	iso, err := v.isolines(samples, thresholds)
	if err != nil {
		return Frame{}, err
	}

	return Frame{
		Time:      v.grid.Time(),
		Lattice:   v.grid.Lattice(),
		Points:    v.grid.Points(),
		Indices:   v.grid.Indices(),
		Colors:    v.ramp.ColorsFor(samples),
		Isolines:  iso,
		Transform: v.grid.Transform(),
	}, nil
}
