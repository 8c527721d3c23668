// Package greedy implements the deterministic single-pass 1/2-approximation
// for Maximum Cut.
//
// What
//
//   - Cut processes vertices 0..n-1 in order. For vertex v it looks only at
//     neighbors u ≤ v that were already placed, counts how many sit on each
//     side, and puts v on the side holding fewer of them (ties go to side 0).
//     The edges from v to already-placed neighbors on the other side are
//     emitted right away, so every edge is emitted exactly once: when its
//     second endpoint is placed.
//   - Basic is the simpler variant: every neighbor is checked against the side
//     table (unplaced neighbors count as "side 1"), and the cut is obtained by
//     classifying the whole edge list afterwards.
//
// Why
//
//	At each step at least half of the edges to already-placed neighbors are
//	cut, and every edge is examined exactly once from its later endpoint, so
//	Cut always returns at least ⌈E/2⌉ edges.
//
// Determinism
//
//	Both functions are pure: for a fixed graph (and therefore fixed neighbor
//	order) they return the same edge sequence on every call.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the side table, O(E) for the output
package greedy
