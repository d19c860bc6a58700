// Package colormap maps scalar samples to colors through a piecewise-linear
// ramp.
//
// A Ramp holds stops (key, color) sorted by strictly increasing key.
// ColorFor finds the first key greater than the value (upper bound),
// interpolates each RGBA channel linearly between the two bracketing stops
// and rounds to 8 bits. Values outside the key range clamp to the nearest
// end stop; the ramp never extrapolates.
//
// Complexity: ColorFor is O(log n) in the number of stops; ColorsFor is
// O(m log n) for m samples.
package colormap
