// Package core defines the Graph, Edge and Partition types shared by every
// max-cut algorithm in this module.
//
// What
//
//   - Graph is an undirected, unweighted simple graph over the dense vertex
//     set {0, ..., n-1}. It is built once by NewGraph and is read-only
//     afterwards.
//   - Edge is an unordered vertex pair stored in canonical form (A < B).
//     Canonicalization happens once, at the Graph boundary; algorithms never
//     re-derive it.
//   - Partition is a side table indexed by vertex id. Its observable result is
//     the cut edge set: the subsequence of AllEdges whose endpoints lie on
//     different sides.
//
// Invariants
//
//   - every neighbor index is < n;
//   - adjacency is symmetric: b ∈ Neighbors(a) ⇔ a ∈ Neighbors(b);
//   - EdgeSize counts each undirected edge once;
//   - AllEdges yields each undirected edge once, canonical, in first-insertion order.
//
// Concurrency
//
//	A *Graph never changes after NewGraph returns, so it can be shared by any
//	number of goroutines without locks. Neighbors and AllEdges hand out the
//	graph's own backing slices; callers must treat them as read-only.
//
// Errors:
//
//	ErrMalformedInput    - umbrella for every construction failure below.
//	ErrNegativeSize      - vertex count is negative.
//	ErrVertexOutOfRange  - an edge endpoint is outside [0, n).
//	ErrLoopNotAllowed    - an edge connects a vertex to itself.
//
// Complexity (V = n, E = distinct edges)
//
//   - NewGraph:  O(V + E) time, O(V + E) space.
//   - Neighbors, AllEdges, Size, EdgeSize: O(1).
//   - HasEdge:   O(min(deg a, deg b)).
package core
