package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatticeIndexRoundTrip(t *testing.T) {
	l := Lattice{W: 3, H: 2, Rect: Rect{X0: 0, X1: 3, Y0: 0, Y1: 2}}
	assert.Equal(t, 12, l.NumPoints())
	assert.Equal(t, 6, l.NumCells())
	for i := 0; i <= l.H; i++ {
		for j := 0; j <= l.W; j++ {
			idx := l.PointIndex(i, j)
			gi, gj := l.Coordinate(idx)
			assert.Equal(t, i, gi)
			assert.Equal(t, j, gj)
		}
	}
	assert.Equal(t, 7, l.PointIndex(1, 3))
}

func TestLatticeInBounds(t *testing.T) {
	l := Lattice{W: 2, H: 1}
	for _, ij := range [][2]int{{0, 0}, {1, 2}, {0, 2}} {
		assert.True(t, l.InBounds(ij[0], ij[1]), "InBounds(%d,%d)", ij[0], ij[1])
	}
	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		assert.False(t, l.InBounds(ij[0], ij[1]), "InBounds(%d,%d)", ij[0], ij[1])
	}
}

func TestLatticeCoordReversedRect(t *testing.T) {
	l := Lattice{W: 2, H: 2, Rect: Rect{X0: 1, X1: -1, Y0: 4, Y1: 0}}
	assert.Equal(t, Point{X: 1, Y: 4}, l.Coord(0, 0))
	assert.Equal(t, Point{X: 0, Y: 2}, l.Coord(1, 1))
	assert.Equal(t, Point{X: -1, Y: 0}, l.Coord(2, 2))
}

func TestRectValidate(t *testing.T) {
	assert.NoError(t, Rect{X0: 0, X1: 1, Y0: 0, Y1: 1}.Validate())
	assert.NoError(t, Rect{X0: 1, X1: 0, Y0: 5, Y1: -5}.Validate())
	assert.ErrorIs(t, Rect{X0: 0, X1: 0, Y0: 0, Y1: 1}.Validate(), ErrInvalidRect)
}
