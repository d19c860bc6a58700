package contour_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isofield/contour"
	"github.com/katalvlaran/isofield/field"
	"github.com/katalvlaran/isofield/grid"
)

var unit = grid.Rect{X0: -1, X1: 1, Y0: -1, Y1: 1}

func cell(samples ...float64) (grid.Lattice, []float64) {
	return grid.Lattice{W: 1, H: 1, Rect: unit}, samples
}

func requirePath(t *testing.T, want []grid.Point, got contour.Isoline) {
	t.Helper()
	require.Len(t, got.Points, len(want))
	for k := range want {
		assert.InDelta(t, want[k].X, got.Points[k].X, 1e-12, "point %d x", k)
		assert.InDelta(t, want[k].Y, got.Points[k].Y, 1e-12, "point %d y", k)
	}
}

//----------------------------------------------------------------------------//
// Single-cell cases
//----------------------------------------------------------------------------//

// TestExtract_SingleCorner: one corner above yields one 2-point path on the
// two edges meeting at that corner.
//
//	+1 ── -1
//	 │     │
//	-1 ── -1
func TestExtract_SingleCorner(t *testing.T) {
	l, s := cell(1, -1, -1, -1)
	got, err := contour.Extract(l, s, []float64{0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	requirePath(t, []grid.Point{{X: 0, Y: -1}, {X: -1, Y: 0}}, got[0])
	assert.False(t, got[0].Closed())
	assert.Equal(t, 0.0, got[0].Level)
}

func TestExtract_InterpolatesAlongEdge(t *testing.T) {
	l, s := cell(3, -1, -1, -1)
	got, err := contour.Extract(l, s, []float64{0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	requirePath(t, []grid.Point{{X: 0.5, Y: -1}, {X: -1, Y: 0.5}}, got[0])
}

// TestExtract_InfiniteEndpoints: +Inf against -Inf gives no finite ratio,
// so the crossing sits at the edge midpoint.
func TestExtract_InfiniteEndpoints(t *testing.T) {
	inf := math.Inf(1)
	l, s := cell(inf, -inf, -inf, -inf)
	got, err := contour.Extract(l, s, []float64{0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	requirePath(t, []grid.Point{{X: 0, Y: -1}, {X: -1, Y: 0}}, got[0])
}

// TestExtract_AdjacentPair: both top corners above cut the cell from the
// left edge to the right edge.
func TestExtract_AdjacentPair(t *testing.T) {
	cases := []struct {
		name    string
		samples []float64
		want    []grid.Point
	}{
		{"Top", []float64{1, 1, -1, -1}, []grid.Point{{X: -1, Y: 0}, {X: 1, Y: 0}}},
		{"Bottom", []float64{-1, -1, 1, 1}, []grid.Point{{X: -1, Y: 0}, {X: 1, Y: 0}}},
		{"Left", []float64{1, -1, 1, -1}, []grid.Point{{X: 0, Y: -1}, {X: 0, Y: 1}}},
		{"Right", []float64{-1, 1, -1, 1}, []grid.Point{{X: 0, Y: -1}, {X: 0, Y: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, s := cell(tc.samples...)
			got, err := contour.Extract(l, s, []float64{0})
			require.NoError(t, err)
			require.Len(t, got, 1)
			requirePath(t, tc.want, got[0])
		})
	}
}

// TestExtract_Saddle: diagonal corners are resolved as two independent
// corner segments.
func TestExtract_Saddle(t *testing.T) {
	l, s := cell(1, -1, -1, 1)
	got, err := contour.Extract(l, s, []float64{0})
	require.NoError(t, err)
	require.Len(t, got, 2)
	requirePath(t, []grid.Point{{X: 0, Y: -1}, {X: -1, Y: 0}}, got[0])
	requirePath(t, []grid.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}, got[1])
}

// TestExtract_ThreeAbove is the complement of a single bottom-right corner.
func TestExtract_ThreeAbove(t *testing.T) {
	l, s := cell(1, 1, 1, -1)
	got, err := contour.Extract(l, s, []float64{0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	requirePath(t, []grid.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}, got[0])
}

// TestExtract_EqualCountsAsAbove: a sample exactly at the threshold is above.
func TestExtract_EqualCountsAsAbove(t *testing.T) {
	l, s := cell(0, -1, -1, -1)
	got, err := contour.Extract(l, s, []float64{0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	requirePath(t, []grid.Point{{X: -1, Y: -1}, {X: -1, Y: -1}}, got[0])
}

//----------------------------------------------------------------------------//
// Whole-grid scenarios
//----------------------------------------------------------------------------//

// TestExtract_CornerScenario: 2×2 cells over [-1,1]², +1 at (1,1) and -1
// elsewhere. The contour bisects the two edges meeting at that corner.
func TestExtract_CornerScenario(t *testing.T) {
	f := field.Func(func(x, y, _ float64) float64 {
		if x == 1 && y == 1 {
			return 1
		}
		return -1
	})
	e, err := grid.New(2, 2, unit, f)
	require.NoError(t, err)
	e.SampleAt(0)

	got, err := contour.Extract(e.Lattice(), e.Samples(), []float64{0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	requirePath(t, []grid.Point{{X: 1, Y: 0.5}, {X: 0.5, Y: 1}}, got[0])
}

// TestExtract_ClosedLoop: a single raised centre point gives one diamond
// whose first and last points coincide.
func TestExtract_ClosedLoop(t *testing.T) {
	l := grid.Lattice{W: 2, H: 2, Rect: unit}
	s := []float64{
		-1, -1, -1,
		-1, 1, -1,
		-1, -1, -1,
	}
	got, err := contour.Extract(l, s, []float64{0})
	require.NoError(t, err)
	require.Len(t, got, 1)
	requirePath(t, []grid.Point{
		{X: 0, Y: -0.5}, {X: 0.5, Y: 0}, {X: 0, Y: 0.5}, {X: -0.5, Y: 0}, {X: 0, Y: -0.5},
	}, got[0])
	assert.True(t, got[0].Closed())
}

func TestExtract_UniformFieldIsEmpty(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 16, 33} {
		e, err := grid.New(n, n, unit, field.Constant(5))
		require.NoError(t, err)
		e.SampleAt(1)
		got, err := contour.Extract(e.Lattice(), e.Samples(), []float64{0})
		require.NoError(t, err)
		assert.Empty(t, got, "resolution %d", n)
	}
}

func TestExtract_AllAboveOrBelow(t *testing.T) {
	f := field.Func(func(x, y, _ float64) float64 { return x + y })
	e, err := grid.New(8, 8, unit, f)
	require.NoError(t, err)
	e.SampleAt(0)

	got, err := contour.Extract(e.Lattice(), e.Samples(), []float64{-2.5, 2.5})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestExtract_LinearFieldStraightLine: x = 0.25 on a linear field crosses
// every row once and yields one open path running the full height.
func TestExtract_LinearFieldStraightLine(t *testing.T) {
	f := field.Func(func(x, _, _ float64) float64 { return x })
	e, err := grid.New(4, 6, unit, f)
	require.NoError(t, err)
	e.SampleAt(0)

	got, err := contour.Extract(e.Lattice(), e.Samples(), []float64{0.25})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Points, 7)
	for _, p := range got[0].Points {
		assert.InDelta(t, 0.25, p.X, 1e-12)
	}
}

func TestExtract_LevelsInThresholdOrder(t *testing.T) {
	f := field.Func(func(x, _, _ float64) float64 { return x })
	e, err := grid.New(4, 4, unit, f)
	require.NoError(t, err)
	e.SampleAt(0)

	levels := []float64{0.6, -0.3, 5}
	got, err := contour.Extract(e.Lattice(), e.Samples(), levels)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0.6, got[0].Level)
	assert.Equal(t, -0.3, got[1].Level)
}

func TestExtract_WaveFieldPointsStayInRect(t *testing.T) {
	r := grid.Rect{X0: -3, X1: 3, Y0: -2, Y1: 2}
	e, err := grid.New(40, 30, r, field.Wave)
	require.NoError(t, err)
	e.SampleAt(1.7)

	got, err := contour.Extract(e.Lattice(), e.Samples(), []float64{-1, -0.5, 0, 0.5, 1})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, iso := range got {
		require.GreaterOrEqual(t, len(iso.Points), 2)
		for _, p := range iso.Points {
			assert.True(t, p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1, "point %v outside rect", p)
		}
	}
}

//----------------------------------------------------------------------------//
// Degenerate input and errors
//----------------------------------------------------------------------------//

func TestExtract_EmptyInputs(t *testing.T) {
	l, s := cell(1, -1, -1, -1)
	got, err := contour.Extract(l, s, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = contour.Extract(grid.Lattice{W: 0, H: 3, Rect: unit}, []float64{1, -1, 1, -1}, []float64{0})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtract_Errors(t *testing.T) {
	l, s := cell(1, -1, -1, -1)

	_, err := contour.Extract(l, s[:3], []float64{0})
	require.ErrorIs(t, err, contour.ErrSampleMismatch)

	_, err = contour.Extract(l, nil, []float64{0})
	require.ErrorIs(t, err, contour.ErrSampleMismatch)

	_, err = contour.Extract(l, s, []float64{0, math.NaN()})
	require.ErrorIs(t, err, contour.ErrNaNThreshold)

	_, err = contour.Extract(grid.Lattice{W: -1, H: 1}, s, []float64{0})
	require.ErrorIs(t, err, contour.ErrInvalidLattice)

	_, err = contour.Segments(l, s[:1], 0)
	require.ErrorIs(t, err, contour.ErrSampleMismatch)
}

func TestSegments(t *testing.T) {
	l, s := cell(1, -1, -1, 1)
	segs, err := contour.Segments(l, s, 0)
	require.NoError(t, err)
	require.Equal(t, []contour.Segment{{A: 0, B: 2}, {A: 4, B: 3}}, segs)
}

//----------------------------------------------------------------------------//
// Edge indexing
//----------------------------------------------------------------------------//

func TestEdgeIndexRoundTripAndDisjoint(t *testing.T) {
	l := grid.Lattice{W: 3, H: 2}
	seen := make(map[int]contour.Edge)
	for i := 0; i <= l.H; i++ {
		for j := 0; j <= l.W; j++ {
			edges := []contour.Edge{}
			if j < l.W {
				edges = append(edges, contour.Edge{Row: i, Col: j, Horizontal: true})
			}
			if i < l.H {
				edges = append(edges, contour.Edge{Row: i, Col: j})
			}
			for _, e := range edges {
				idx := contour.EdgeIndex(l, e)
				prev, dup := seen[idx]
				require.False(t, dup, "%v collides with %v at %d", e, prev, idx)
				seen[idx] = e
				require.Equal(t, e, contour.EdgeOf(l, idx))
			}
		}
	}
	assert.Equal(t, 8, contour.EdgeIndex(l, contour.Edge{Row: 1, Col: 0, Horizontal: true}))
	assert.Equal(t, 12, contour.EdgeIndex(l, contour.Edge{Row: 1, Col: 0}))
}

func TestEdgeEndpointsAndString(t *testing.T) {
	i0, j0, i1, j1 := contour.Edge{Row: 2, Col: 3, Horizontal: true}.Endpoints()
	assert.Equal(t, [4]int{2, 3, 2, 4}, [4]int{i0, j0, i1, j1})
	i0, j0, i1, j1 = contour.Edge{Row: 2, Col: 3}.Endpoints()
	assert.Equal(t, [4]int{2, 3, 3, 3}, [4]int{i0, j0, i1, j1})
	assert.Equal(t, "h(2,3)", contour.Edge{Row: 2, Col: 3, Horizontal: true}.String())
	assert.Equal(t, "v(0,1)", contour.Edge{Row: 0, Col: 1}.String())
}
