package grid

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/isofield/field"
	"github.com/katalvlaran/isofield/internal/logx"
	"github.com/katalvlaran/isofield/matrix"
)

// Engine samples a field on a regular lattice. It is not safe for
// concurrent use; a single render loop is expected to own it.
//
// Every buffer is rebuilt wholesale: Configure and Resize replace points,
// indices and transform; SampleAt replaces the samples. Accessors return
// copies, so callers can never mutate engine state.
type Engine struct {
	lat       Lattice
	field     field.Field
	points    []Point
	indices   []uint32
	transform matrix.Mat4

	samples []float64 // nil until the first SampleAt
	time    float64

	logger *slog.Logger
}

// New builds an Engine for a w×h-cell grid over r. The samples stay empty
// until SampleAt is called.
// Returns ErrNilField, or a *ConfigError wrapping ErrNegativeResolution,
// ErrTooLarge or ErrInvalidRect.
// Complexity: O(w×h).
func New(w, h int, r Rect, f field.Field, opts ...Option) (*Engine, error) {
	if f == nil {
		return nil, ErrNilField
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{field: f, logger: o.logger}
	if err := e.Configure(w, h, r); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Engine) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}

	return logx.Logger()
}

// Configure rebuilds the lattice, the triangle indices and the transform
// for a w×h-cell grid over r. On error the engine is left untouched.
// If the engine was already sampled, the field is resampled at the last
// time so that Samples always matches Points.
func (e *Engine) Configure(w, h int, r Rect) error {
	if err := validate(w, h, r); err != nil {
		return &ConfigError{W: w, H: h, Rect: r, Err: err}
	}
	lat := Lattice{W: w, H: h, Rect: r}

	e.lat = lat
	e.points = buildPoints(lat)
	e.indices = buildIndices(lat)
	e.transform = normalize(r)
	e.log().Debug("grid: configured",
		"w", w, "h", h, "rect", r.String(),
		"points", len(e.points), "indices", len(e.indices))

	if e.samples != nil {
		e.SampleAt(e.time)
	}

	return nil
}

// Resize is Configure with the current rectangle.
func (e *Engine) Resize(w, h int) error {
	return e.Configure(w, h, e.lat.Rect)
}

func validate(w, h int, r Rect) error {
	if w < 0 || h < 0 {
		return ErrNegativeResolution
	}
	if uint64(w+1) > math.MaxUint32/uint64(h+1) {
		return ErrTooLarge
	}

	return r.Validate()
}

// buildPoints lays out the (W+1)×(H+1) lattice row by row.
func buildPoints(l Lattice) []Point {
	pts := make([]Point, 0, l.NumPoints())
	for i := 0; i <= l.H; i++ {
		for j := 0; j <= l.W; j++ {
			pts = append(pts, l.Coord(i, j))
		}
	}

	return pts
}

// buildIndices emits two triangles per cell with the fixed TL–BR split:
// (TL, BR, BL) then (TL, TR, BR).
func buildIndices(l Lattice) []uint32 {
	idx := make([]uint32, 0, 6*l.NumCells())
	for i := 0; i < l.H; i++ {
		for j := 0; j < l.W; j++ {
			tl := uint32(l.PointIndex(i, j))
			tr := uint32(l.PointIndex(i, j+1))
			bl := uint32(l.PointIndex(i+1, j))
			br := uint32(l.PointIndex(i+1, j+1))
			idx = append(idx, tl, br, bl, tl, tr, br)
		}
	}

	return idx
}

// normalize maps r onto [-1,1]²: shift the center to the origin, then
// scale by 2/width and 2/height.
func normalize(r Rect) matrix.Mat4 {
	return matrix.Scaling(2/(r.X1-r.X0), 2/(r.Y1-r.Y0), 1).
		Mul(matrix.Shift(-(r.X0+r.X1)/2, -(r.Y0+r.Y1)/2, 0))
}

// SampleAt evaluates the field at every lattice point for time t and
// replaces the sample buffer.
// Complexity: O(W×H) field evaluations.
func (e *Engine) SampleAt(t float64) {
	samples := make([]float64, len(e.points))
	for k, p := range e.points {
		samples[k] = e.field.Evaluate(p.X, p.Y, t)
	}
	e.samples = samples
	e.time = t
	e.log().Debug("grid: sampled", "t", t, "points", len(samples))
}

// Lattice returns the current topology.
func (e *Engine) Lattice() Lattice { return e.lat }

// Resolution returns the number of cells along x and y.
func (e *Engine) Resolution() (w, h int) { return e.lat.W, e.lat.H }

// Rect returns the sampled rectangle.
func (e *Engine) Rect() Rect { return e.lat.Rect }

// Transform returns the rectangle-to-device-box transform.
func (e *Engine) Transform() matrix.Mat4 { return e.transform }

// Time returns the time of the last SampleAt call.
func (e *Engine) Time() float64 { return e.time }

// Sampled reports whether SampleAt has been called at least once.
func (e *Engine) Sampled() bool { return e.samples != nil }

// Points returns a copy of the lattice positions in row-major order.
func (e *Engine) Points() []Point {
	out := make([]Point, len(e.points))
	copy(out, e.points)

	return out
}

// Indices returns a copy of the triangle index buffer (6·W·H entries,
// three per triangle).
func (e *Engine) Indices() []uint32 {
	out := make([]uint32, len(e.indices))
	copy(out, e.indices)

	return out
}

// Samples returns a copy of the current sample buffer, or nil before the
// first SampleAt.
func (e *Engine) Samples() []float64 {
	if e.samples == nil {
		return nil
	}
	out := make([]float64, len(e.samples))
	copy(out, e.samples)

	return out
}
