package render

import "errors"

var (
	// ErrInvalidSize indicates a non-positive image size or supersampling factor.
	ErrInvalidSize = errors.New("render: image size must be positive")
	// ErrColorMismatch indicates a frame with a color count different from its point count.
	ErrColorMismatch = errors.New("render: colors do not match points")
	// ErrIndexRange indicates a triangle index outside the point buffer.
	ErrIndexRange = errors.New("render: triangle index out of range")
)
