// Package contour extracts isolines from a sampled grid with marching
// squares and joins the per-cell segments into polylines.
//
// Algorithm Outline (per threshold c):
//  1. Classify every cell corner as above (v ≥ c) or below. Cells with 0 or
//     4 corners above contribute nothing. With more than two corners above
//     the classification is complemented first.
//  2. Two adjacent corners above produce one straight segment across the
//     cell. Any other case is decomposed corner by corner: each remaining
//     corner joins the crossings on its two incident edges. A saddle (two
//     diagonal corners) therefore yields two separate corner segments; no
//     centre-value decider is applied.
//  3. Segment endpoints are edge indices (see EdgeIndex). The segments form
//     an undirected graph in which every node has degree ≤ 2; a third arc
//     aborts extraction with a *TopologyError.
//  4. The graph is consumed by walks: first from every degree-1 node in
//     ascending index order (open polylines), then from every remaining
//     degree-2 node (closed loops, first point repeated at the end).
//  5. Each edge index becomes a point by linear interpolation of the two
//     endpoint samples, t = (c - v0)/(v1 - v0), or the edge midpoint when
//     v0 == v1.
//
// Extraction is a pure function of the lattice, the samples and the
// thresholds. No state is retained between calls.
//
// Complexity:
//
//	Time   = O(T·(W·H)) for T thresholds
//	Memory = O(W·H) for the edge graph, reused across thresholds
package contour
