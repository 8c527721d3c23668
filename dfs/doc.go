// Package dfs implements depth-first search traversal and connected-component
// decomposition on a core.Graph.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking.
//     Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Full-graph (forest) traversal with WithFullTraversal
//   - Components splits the vertices into connected components. Maximum Cut
//     decomposes over components: the maximum cut of a graph is the union of
//     the maximum cuts of its components, solved independently.
//
// Determinism:
//
//	Neighbors are followed in core.Graph.Neighbors order and forest roots in
//	ascending vertex order, so Order and component contents are reproducible.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the recursion stack and per-vertex metadata.
package dfs
