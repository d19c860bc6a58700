package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRect indicates a degenerate or non-finite bounding rectangle.
	ErrInvalidRect = errors.New("grid: rectangle must satisfy x0≠x1, y0≠y1 with finite bounds")
	// ErrNegativeResolution indicates W<0 or H<0.
	ErrNegativeResolution = errors.New("grid: resolution must be non-negative")
	// ErrTooLarge indicates a lattice with more points than uint32 indices can address.
	ErrTooLarge = errors.New("grid: resolution exceeds uint32 index range")
	// ErrNilField indicates that the engine was built without a field.
	ErrNilField = errors.New("grid: field is nil")
)

// ConfigError reports a rejected Configure/Resize call together with the
// values that were rejected. The engine state is left unchanged.
type ConfigError struct {
	W, H int
	Rect Rect
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("grid: configure %dx%d over %v: %v", e.W, e.H, e.Rect, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
