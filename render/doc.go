// Package render rasterizes an isofield.Frame into an *image.RGBA without a
// GPU: the mesh is filled triangle by triangle with per-vertex colors
// interpolated across each triangle, isolines are stroked on top with
// golang.org/x/image/vector, and the frame time can be stamped in a corner.
//
// Device mapping follows the frame's transform: the sampled rectangle lands
// on [-1,1]², which is stretched over the whole image with +y pointing up.
//
// With supersampling k > 1 the frame is drawn at k times the target size
// and reduced with a Catmull-Rom filter, which smooths triangle edges.
package render
