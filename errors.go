package isofield

import "errors"

var (
	// ErrNotSampled indicates that colors or isolines were requested before
	// the first SampleAt.
	ErrNotSampled = errors.New("isofield: field has not been sampled")
	// ErrNilEngine indicates a Visualizer built without a grid engine.
	ErrNilEngine = errors.New("isofield: grid engine is nil")
)
