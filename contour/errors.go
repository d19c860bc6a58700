package contour

import (
	"errors"
	"fmt"
)

var (
	// ErrSampleMismatch indicates a sample buffer whose length differs from
	// the lattice point count, typically a grid that was never sampled.
	ErrSampleMismatch = errors.New("contour: sample count does not match lattice")
	// ErrInvalidLattice indicates negative lattice dimensions.
	ErrInvalidLattice = errors.New("contour: lattice dimensions must be non-negative")
	// ErrNaNThreshold indicates a NaN threshold, which no sample can cross.
	ErrNaNThreshold = errors.New("contour: threshold is NaN")
	// ErrInconsistentTopology indicates an edge crossing with more than two
	// incident segments. It is an internal invariant violation: marching
	// squares on a grid never produces it.
	ErrInconsistentTopology = errors.New("contour: edge crossing has more than two segments")
)

// TopologyError reports the edge crossing at which path assembly found a
// third incident segment. It unwraps to ErrInconsistentTopology.
type TopologyError struct {
	Level float64
	Node  int
	Edge  Edge
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("contour: level %g: edge %d %v has more than two segments", e.Level, e.Node, e.Edge)
}

func (e *TopologyError) Unwrap() error { return ErrInconsistentTopology }
