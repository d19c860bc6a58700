package grid

// Lattice describes the topology of a W×H-cell grid over Rect.
// It is a plain value: copying it never aliases engine buffers.
type Lattice struct {
	W, H int
	Rect Rect
}

// NumPoints returns (W+1)*(H+1).
// Complexity: O(1).
func (l Lattice) NumPoints() int {
	return (l.W + 1) * (l.H + 1)
}

// NumCells returns W*H.
func (l Lattice) NumCells() int {
	return l.W * l.H
}

// InBounds reports whether lattice point (i, j) exists.
// Complexity: O(1).
func (l Lattice) InBounds(i, j int) bool {
	return i >= 0 && i <= l.H && j >= 0 && j <= l.W
}

// PointIndex maps row i and column j to the row-major index i*(W+1)+j.
// Complexity: O(1).
func (l Lattice) PointIndex(i, j int) int {
	return i*(l.W+1) + j
}

// Coordinate converts a row-major point index back to (i, j).
// Complexity: O(1).
func (l Lattice) Coordinate(idx int) (i, j int) {
	return idx / (l.W + 1), idx % (l.W + 1)
}

// Coord returns the world position of lattice point (i, j): the row
// parameter i/H and column parameter j/W interpolate linearly between the
// rectangle bounds. A zero-width axis collapses onto its low bound.
func (l Lattice) Coord(i, j int) Point {
	return Point{
		X: lerp(l.Rect.X0, l.Rect.X1, part(j, l.W)),
		Y: lerp(l.Rect.Y0, l.Rect.Y1, part(i, l.H)),
	}
}

func part(k, n int) float64 {
	if n == 0 {
		return 0
	}

	return float64(k) / float64(n)
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
