// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/isofield/field"
	"github.com/katalvlaran/isofield/grid"
)

// ExampleEngine demonstrates building a 2×1 mesh and sampling a field.
//
//	(0,1)───(1,1)───(2,1)
//	  │  ╲    │  ╲    │
//	(0,0)───(1,0)───(2,0)
func ExampleEngine() {
	f := field.Func(func(x, y, _ float64) float64 { return x * y })
	e, _ := grid.New(2, 1, grid.Rect{X0: 0, X1: 2, Y0: 0, Y1: 1}, f)
	e.SampleAt(0)

	fmt.Println("points:", len(e.Points()))
	fmt.Println("triangles:", len(e.Indices())/3)
	fmt.Println("samples:", e.Samples())
	// Output:
	// points: 6
	// triangles: 4
	// samples: [0 0 0 0 1 2]
}
