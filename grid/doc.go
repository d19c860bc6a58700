// Package grid samples a scalar field on a regular rectangular lattice and
// exposes the result as a triangle mesh.
//
// What:
//
//   - Engine owns the resolution W×H, the bounding rectangle, the
//     (W+1)×(H+1) lattice points, the 6·W·H triangle indices and the
//     transform that maps the rectangle onto the [-1,1]² device box.
//   - SampleAt evaluates the field at every lattice point for one time
//     value and replaces the sample buffer wholesale.
//   - Lattice is a small read-only value describing the topology; the
//     contour package consumes it together with Samples.
//
// Layout:
//
//   - Point (i, j) for row i ∈ [0,H] and column j ∈ [0,W] lives at index
//     i*(W+1)+j.
//   - Cell (i, j) is split along its TL–BR diagonal into the triangles
//     (TL, BR, BL) and (TL, TR, BR).
//
// Complexity:
//
//   - Configure/Resize: O(W×H) time and memory.
//   - SampleAt:         O(W×H) field evaluations.
//
// Errors:
//
//   - ErrInvalidRect: x0==x1, y0==y1 or a non-finite bound.
//   - ErrNegativeResolution: W<0 or H<0.
//   - ErrTooLarge: the lattice cannot be addressed with uint32 indices.
//   - ErrNilField: no field supplied.
//
// All configuration errors arrive wrapped in *ConfigError.
// W=0 or H=0 is not an error: the mesh has no triangles and callers must
// tolerate empty index buffers.
package grid
