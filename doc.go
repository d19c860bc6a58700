// Package isofield samples a time-varying scalar field f(x, y, t) on a
// regular grid and turns it into drawable geometry: a triangle mesh shaded
// through a color ramp, and isolines traced with marching squares.
//
// The work is split across small subpackages:
//
//	field/    the Field interface and a few built-in fields
//	matrix/   4×4 row-major transforms (scaling, shift, product)
//	grid/     lattice points, triangle indices, transform, samples
//	colormap/ piecewise-linear color ramp
//	contour/  marching squares, edge graph and path assembly
//	render/   software rasterizer and PNG output
//
// Visualizer ties grid, colormap and contour together for a render loop:
//
//	g, _ := grid.New(64, 64, grid.Rect{X0: -3, X1: 3, Y0: -3, Y1: 3}, field.Wave)
//	v, _ := isofield.NewVisualizer(g, colormap.DefaultRamp())
//	for t := 0.0; ; t += dt {
//		v.SampleAt(t)
//		frame, _ := v.Frame([]float64{-1, 0, 1})
//		draw(frame)
//	}
//
// Nothing here is safe for concurrent mutation: a Visualizer belongs to the
// goroutine that drives it. Every accessor returns a copy, so a Frame can be
// handed to another goroutine once produced.
//
// Logging goes through log/slog and is silent until SetLogger is called.
package isofield
