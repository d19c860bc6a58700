package contour

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/isofield/grid"
	"github.com/katalvlaran/isofield/internal/logx"
)

// Isoline is one connected contour fragment at a single threshold. A closed
// loop repeats its first point at the end.
type Isoline struct {
	Level  float64
	Points []grid.Point
}

// Closed reports whether the polyline returns to its starting point.
func (iso Isoline) Closed() bool {
	n := len(iso.Points)
	return n > 2 && iso.Points[0] == iso.Points[n-1]
}

// Extract computes the isolines of samples over l for each threshold, in
// threshold order. Paths of one threshold are edge-disjoint.
//
// Returns ErrInvalidLattice, ErrSampleMismatch, ErrNaNThreshold, or a
// *TopologyError wrapping ErrInconsistentTopology. On error no partial
// result is returned.
//
// Complexity: O(T·W·H) time, O(W·H) memory.
func Extract(l grid.Lattice, samples []float64, thresholds []float64) ([]Isoline, error) {
	if err := checkInput(l, samples); err != nil {
		return nil, err
	}
	for _, c := range thresholds {
		if math.IsNaN(c) {
			return nil, ErrNaNThreshold
		}
	}

	var (
		g    edgeGraph
		segs []Segment
		out  = make([]Isoline, 0)
		log  = logx.Logger()
	)
	for _, c := range thresholds {
		segs = appendSegments(segs[:0], l, samples, c)
		paths, err := g.assemble(edgeSpace(l), segs)
		if err != nil {
			var te *TopologyError
			if errors.As(err, &te) {
				te.Level = c
				te.Edge = EdgeOf(l, te.Node)
			}
			return nil, err
		}
		for _, p := range paths {
			pts := make([]grid.Point, len(p))
			for k, idx := range p {
				pts[k] = crossing(l, samples, idx, c)
			}
			out = append(out, Isoline{Level: c, Points: pts})
		}
		log.Debug("contour: extracted", "level", c, "segments", len(segs), "paths", len(paths))
	}

	return out, nil
}

func checkInput(l grid.Lattice, samples []float64) error {
	if l.W < 0 || l.H < 0 {
		return ErrInvalidLattice
	}
	if len(samples) != l.NumPoints() {
		return fmt.Errorf("%w: have %d samples, lattice has %d points",
			ErrSampleMismatch, len(samples), l.NumPoints())
	}

	return nil
}

// crossing places the threshold crossing on edge idx by linear
// interpolation between the edge's endpoint samples. Equal or infinite
// endpoints give no usable ratio and fall back to the midpoint.
func crossing(l grid.Lattice, samples []float64, idx int, c float64) grid.Point {
	i0, j0, i1, j1 := EdgeOf(l, idx).Endpoints()
	p0, p1 := l.Coord(i0, j0), l.Coord(i1, j1)
	v0 := samples[l.PointIndex(i0, j0)]
	v1 := samples[l.PointIndex(i1, j1)]

	t := 0.5
	if v0 != v1 {
		if r := (c - v0) / (v1 - v0); !math.IsNaN(r) && !math.IsInf(r, 0) {
			t = r
		}
	}

	return grid.Point{
		X: p0.X*(1-t) + p1.X*t,
		Y: p0.Y*(1-t) + p1.Y*t,
	}
}
