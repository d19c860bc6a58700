package colormap

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// Stop pins a color to a scalar key.
type Stop struct {
	Key   float64
	Color color.RGBA
}

// Ramp is an immutable, ascending sequence of stops.
// keys and colors are parallel slices so the search touches keys only.
type Ramp struct {
	keys   []float64
	colors []color.RGBA
}

// NewRamp sorts the stops by key and builds a Ramp.
// Returns ErrEmptyRamp, ErrNaNInf or ErrDuplicateKey.
// Complexity: O(n log n).
func NewRamp(stops ...Stop) (*Ramp, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyRamp
	}
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	for _, s := range sorted {
		if math.IsNaN(s.Key) || math.IsInf(s.Key, 0) {
			return nil, fmt.Errorf("%w: %v", ErrNaNInf, s.Key)
		}
	}
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Key < sorted[b].Key })

	r := &Ramp{
		keys:   make([]float64, len(sorted)),
		colors: make([]color.RGBA, len(sorted)),
	}
	for i, s := range sorted {
		if i > 0 && s.Key == sorted[i-1].Key {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, s.Key)
		}
		r.keys[i] = s.Key
		r.colors[i] = s.Color
	}

	return r, nil
}

// DefaultRamp is the dark-navy-to-white ramp over {-3,-1,0,1,3}.
func DefaultRamp() *Ramp {
	r, _ := NewRamp(
		Stop{Key: -3, Color: color.RGBA{R: 11, G: 19, B: 43, A: 255}},
		Stop{Key: -1, Color: color.RGBA{R: 28, G: 37, B: 65, A: 255}},
		Stop{Key: 0, Color: color.RGBA{R: 58, G: 80, B: 107, A: 255}},
		Stop{Key: 1, Color: color.RGBA{R: 91, G: 192, B: 190, A: 255}},
		Stop{Key: 3, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	)

	return r
}

// Len returns the number of stops.
func (r *Ramp) Len() int { return len(r.keys) }

// Stops returns a copy of the stops in ascending key order.
func (r *Ramp) Stops() []Stop {
	out := make([]Stop, len(r.keys))
	for i := range r.keys {
		out[i] = Stop{Key: r.keys[i], Color: r.colors[i]}
	}

	return out
}

// ColorFor returns the ramp color for v.
//
// The smallest key strictly greater than v is located by binary search.
// When there is none (v ≥ max key, or v is NaN) the last color is returned;
// when it is the first key (v < min key) the first color is returned.
// Otherwise the two bracketing colors are blended with
// t = (v - lo) / (hi - lo), each channel rounded to the nearest integer.
func (r *Ramp) ColorFor(v float64) color.RGBA {
	n := len(r.keys)
	hi := sort.Search(n, func(i int) bool { return r.keys[i] > v })
	switch hi {
	case n:
		return r.colors[n-1]
	case 0:
		return r.colors[0]
	}
	lo := hi - 1
	t := (v - r.keys[lo]) / (r.keys[hi] - r.keys[lo])

	return lerpRGBA(r.colors[lo], r.colors[hi], t)
}

// ColorsFor maps every sample, preserving order.
func (r *Ramp) ColorsFor(samples []float64) []color.RGBA {
	out := make([]color.RGBA, len(samples))
	for k, v := range samples {
		out[k] = r.ColorFor(v)
	}

	return out
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a)*(1-t) + float64(b)*t)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}

	return uint8(v)
}
