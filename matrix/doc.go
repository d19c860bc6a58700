// Package matrix provides the 4×4 homogeneous transforms handed to
// renderers alongside the grid mesh.
//
// What:
//
//   - Mat4 is a fixed-size row-major matrix (offset = i*4 + j).
//   - Identity, Scaling and Shift build the affine primitives; Mul composes
//     them; Apply transforms a point.
//   - Float32 flattens the matrix for GPU uniform upload.
//
// Complexity:
//
//   - At/Set: O(1) with bounds checking; Mul: O(64); Apply: O(16).
package matrix
