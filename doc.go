// Package maxcut is a toolkit for the Maximum Cut problem on simple
// undirected graphs: split the vertices into two sides so that as many edges
// as possible cross between them.
//
// What is inside?
//
//	• Graph model: vertices 0..n-1, undirected edges, partitions and cut checks
//	• Greedy cut: the classic 1/2-approximation, one vertex at a time
//	• Random cuts: sequential and parallel single trials, plus a racer that
//	  repeats parallel trials until a target size is met
//	• Exact cut: a 0/1 program solved by branch and bound, per component
//	• File formats: PACE, Rudy and plain edge lists, optionally bzip2-packed
//	• A command-line driver with text, YAML and benchmark output
//
// Subpackages:
//
//	core/      - Graph, Edge, Partition and cut validation
//	matrix/    - dense adjacency view and cut weight of a side vector
//	builder/   - deterministic graph families and seeded random graphs
//	bfs/, dfs/ - traversals, two-coloring and connected components
//	greedy/    - greedy approximation
//	heuristic/ - random cuts, fork-join workers, best-of-random racer
//	exact/     - 0/1 model, LP export and branch-and-bound solver
//	graphio/   - parsers and writers for graph files
//	config/    - flags, environment and YAML configuration
//	logger/    - zap logger construction
//	report/    - result rendering
//	cmd/maxcut - the command-line tool
//
// Quick start:
//
//	g, _ := builder.Wheel(5)
//	cut := greedy.Cut(g)
//	best, _ := exact.MaxCut(context.Background(), g, nil)
//
// Command line:
//
//	go install github.com/katalvlaran/maxcut/cmd/maxcut@latest
//	maxcut -H --ilp 30 graph.gr.bz2
package maxcut
