package colormap

import "errors"

var (
	// ErrEmptyRamp indicates a ramp built with no stops.
	ErrEmptyRamp = errors.New("colormap: ramp needs at least one stop")
	// ErrDuplicateKey indicates two stops with the same key.
	ErrDuplicateKey = errors.New("colormap: stop keys must be distinct")
	// ErrNaNInf indicates a NaN or infinite stop key.
	ErrNaNInf = errors.New("colormap: stop key is NaN or Inf")
)
