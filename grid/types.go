package grid

import (
	"fmt"
	"log/slog"
	"math"
)

// Point is a position in field (world) coordinates.
type Point struct {
	X, Y float64
}

// Rect is the sampled region: x runs from X0 to X1 along columns, y from
// Y0 to Y1 along rows. X0 may exceed X1 (and Y0 may exceed Y1); the lattice
// then simply runs in the opposite direction.
type Rect struct {
	X0, X1, Y0, Y1 float64
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g]×[%g,%g]", r.X0, r.X1, r.Y0, r.Y1)
}

// Validate reports ErrInvalidRect for degenerate or non-finite bounds.
func (r Rect) Validate() error {
	for _, v := range [...]float64{r.X0, r.X1, r.Y0, r.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidRect
		}
	}
	if r.X0 == r.X1 || r.Y0 == r.Y1 {
		return ErrInvalidRect
	}

	return nil
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes engine diagnostics to l instead of the package-wide
// logger installed by isofield.SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
