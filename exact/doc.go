// Package exact solves Maximum Cut optimally on small graphs and exposes the
// integer-programming model of the problem for external solvers.
//
// Model
//
//	One binary variable x_v per vertex (its side) and one binary variable y_e
//	per edge e = (a, b) (whether e is cut). Maximize Σ y_e subject to
//
//	    y_e ≤ x_a + x_b
//	    y_e ≤ 2 − x_a − x_b
//
//	so y_e can be 1 only when exactly one endpoint is on side 1.
//	BuildModel materializes it; Model.WriteLP renders CPLEX LP text for any
//	external MILP backend.
//
// Solvers
//
//	Solver is the boundary: Solve(ctx, model) returns an optimal Partition.
//	MaxCut splits the graph into connected components, cuts bipartite ones
//	completely and solves the rest independently.
//	BranchAndBound is the built-in implementation: a depth-first search over
//	vertex sides with vertex 0 pinned to side 0 (cuts are symmetric), an
//	admissible bound "current cut + undecided edges", an incumbent seeded by
//	the greedy approximation, and sparse context checks every 4096 nodes.
//
// Errors
//
//   - ErrGraphNil / ErrModelNil on nil inputs.
//   - ErrTooLarge when the vertex count exceeds MaxVertices.
//   - ErrTimeout (wrapping the context error) when ctx expires mid-search.
//   - ErrBadSolution when a Solver returns a partition of the wrong size.
//
// Complexity
//
//   - BranchAndBound: O(2^(V−1) · Δ) worst case, far less with pruning.
//   - BuildModel: O(V + E) variables, 2E constraints.
package exact
