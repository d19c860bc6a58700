package contour

import (
	"fmt"

	"github.com/katalvlaran/isofield/grid"
)

// Edge names one lattice edge. A horizontal edge (Row, Col) joins points
// (Row, Col) and (Row, Col+1); a vertical edge joins (Row, Col) and
// (Row+1, Col).
type Edge struct {
	Row, Col   int
	Horizontal bool
}

func (e Edge) String() string {
	if e.Horizontal {
		return fmt.Sprintf("h(%d,%d)", e.Row, e.Col)
	}

	return fmt.Sprintf("v(%d,%d)", e.Row, e.Col)
}

// Endpoints returns the lattice coordinates of the two points joined by e.
func (e Edge) Endpoints() (i0, j0, i1, j1 int) {
	if e.Horizontal {
		return e.Row, e.Col, e.Row, e.Col + 1
	}

	return e.Row, e.Col, e.Row + 1, e.Col
}

// EdgeIndex flattens e for lattice l. Each lattice row owns a block of
// 2·(W+1) indices: horizontal edges take the first W+1 slots, vertical
// edges the next W+1, so the two kinds never collide.
// Complexity: O(1).
func EdgeIndex(l grid.Lattice, e Edge) int {
	stride := 2 * (l.W + 1)
	if e.Horizontal {
		return stride*e.Row + e.Col
	}

	return stride*e.Row + (l.W + 1) + e.Col
}

// EdgeOf is the inverse of EdgeIndex.
// Complexity: O(1).
func EdgeOf(l grid.Lattice, idx int) Edge {
	stride := 2 * (l.W + 1)
	row, col := idx/stride, idx%stride
	if col > l.W {
		return Edge{Row: row, Col: col - (l.W + 1)}
	}

	return Edge{Row: row, Col: col, Horizontal: true}
}

// edgeSpace is the size of the flat edge index range for l.
func edgeSpace(l grid.Lattice) int {
	return 2 * (l.W + 1) * (l.H + 1)
}
