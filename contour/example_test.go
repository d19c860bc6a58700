package contour_test

import (
	"fmt"

	"github.com/katalvlaran/isofield/contour"
	"github.com/katalvlaran/isofield/grid"
)

// ExampleExtract traces the 0-level of a 2×2-cell grid whose only positive
// sample is lattice point (2, 2), drawn here with row 0 on top.
//
//	-1 ── -1 ── -1
//	 │     │     │
//	-1 ── -1 ── -1
//	 │     │  ╱  │
//	-1 ── -1 ── +1
func ExampleExtract() {
	l := grid.Lattice{W: 2, H: 2, Rect: grid.Rect{X0: -1, X1: 1, Y0: -1, Y1: 1}}
	samples := []float64{
		-1, -1, -1,
		-1, -1, -1,
		-1, -1, 1,
	}
	isolines, _ := contour.Extract(l, samples, []float64{0})
	for _, iso := range isolines {
		fmt.Println(iso.Level, iso.Points)
	}
	// Output:
	// 0 [{1 0.5} {0.5 1}]
}
