package contour

import "github.com/katalvlaran/isofield/grid"

// Segment joins two edge crossings inside one cell.
type Segment struct {
	A, B int
}

// Cell-local edges, offsets relative to the cell's top-left point.
var (
	edgeTop    = Edge{Row: 0, Col: 0, Horizontal: true}
	edgeBottom = Edge{Row: 1, Col: 0, Horizontal: true}
	edgeLeft   = Edge{Row: 0, Col: 0}
	edgeRight  = Edge{Row: 0, Col: 1}
)

// cellEdges classifies one cell and returns up to two local segments.
// Arguments report whether each corner is above the threshold.
func cellEdges(tl, tr, bl, br bool) (out [2][2]Edge, n int) {
	count := b2i(tl) + b2i(tr) + b2i(bl) + b2i(br)
	if count > 2 {
		tl, tr, bl, br = !tl, !tr, !bl, !br
		count = 4 - count
	}
	switch {
	case count == 0:
		return out, 0
	case count == 2 && ((tl && tr) || (bl && br)):
		out[0] = [2]Edge{edgeLeft, edgeRight}
		return out, 1
	case count == 2 && ((tl && bl) || (tr && br)):
		out[0] = [2]Edge{edgeTop, edgeBottom}
		return out, 1
	}
	if tl {
		out[n] = [2]Edge{edgeTop, edgeLeft}
		n++
	}
	if tr {
		out[n] = [2]Edge{edgeTop, edgeRight}
		n++
	}
	if bl {
		out[n] = [2]Edge{edgeLeft, edgeBottom}
		n++
	}
	if br {
		out[n] = [2]Edge{edgeBottom, edgeRight}
		n++
	}

	return out, n
}

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}

// Segments runs marching squares over every cell for threshold c and
// returns the segments in row-major cell order.
// Returns ErrInvalidLattice or ErrSampleMismatch.
// Complexity: O(W·H).
func Segments(l grid.Lattice, samples []float64, c float64) ([]Segment, error) {
	if err := checkInput(l, samples); err != nil {
		return nil, err
	}

	return appendSegments(nil, l, samples, c), nil
}

func appendSegments(dst []Segment, l grid.Lattice, samples []float64, c float64) []Segment {
	for i := 0; i < l.H; i++ {
		for j := 0; j < l.W; j++ {
			local, n := cellEdges(
				samples[l.PointIndex(i, j)] >= c,
				samples[l.PointIndex(i, j+1)] >= c,
				samples[l.PointIndex(i+1, j)] >= c,
				samples[l.PointIndex(i+1, j+1)] >= c,
			)
			for k := 0; k < n; k++ {
				dst = append(dst, Segment{
					A: EdgeIndex(l, offset(local[k][0], i, j)),
					B: EdgeIndex(l, offset(local[k][1], i, j)),
				})
			}
		}
	}

	return dst
}

func offset(e Edge, i, j int) Edge {
	e.Row += i
	e.Col += j

	return e
}
