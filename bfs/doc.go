// Package bfs provides breadth-first search over a core.Graph and the
// two-coloring built on it.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a
//     start vertex and returns a BFSResult with:
//   - Order: visit sequence
//   - Depth: distance from start per vertex, -1 if unreached
//   - Parent: BFS-tree predecessor per vertex, -1 for the root and unreached
//   - OnVisit hooks may abort the walk with an error; MaxDepth bounds it.
//   - TwoColor colors every component by depth parity and reports whether
//     the graph is bipartite. A bipartite graph's two colors form a cut that
//     contains every edge, which is therefore a maximum cut.
//
// Determinism
//
//	Neighbors are enqueued in core.Graph.Neighbors order, which is fixed by
//	the edge input order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartOutOfRange     if the start vertex is not in [0, V).
//   - ErrOptionViolation     for an invalid Option (e.g. negative MaxDepth).
//   - Wrapped OnVisit errors, or ctx.Err() on cancellation.
package bfs
