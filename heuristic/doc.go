// Package heuristic provides randomized Maximum Cut heuristics over a core.Graph:
// a single coin-flip trial (sequential and parallel) and a multi-round racer
// that keeps the best of many parallel trials.
//
// What
//
//   - RandomCut puts every vertex on side 1 with probability 1/2, drawn from a
//     Source, and returns the edges whose endpoints differ. The expected cut
//     size is E/2.
//   - RandomCutParallel does the same with P goroutines: the vertex range is
//     split into P contiguous slices, each worker fills a private buffer with
//     its own independently seeded Source, the buffers are merged after the
//     join, and the edge list is then classified in P contiguous slices
//     against that read-only partition.
//   - BestOfRandom runs rounds of P independent full-graph RandomCut trials in
//     parallel and keeps the largest cut seen. It stops once the best cut has
//     at least min(n/2, ⌈E/2⌉) edges.
//
// Randomness
//
//	Every worker owns its Source; no stream is shared across goroutines.
//	WithSeed(s) (s ≠ 0) or WithSource derive per-worker streams with a
//	SplitMix64 mix, so runs are reproducible. Without either, each worker
//	seeds itself from crypto/rand.
//
// Concurrency
//
//	Each call forks its own goroutines and blocks until all of them finish
//	(errgroup). No pool outlives a call. The graph is only read. A worker
//	that panics or errors fails the whole call with ErrTaskFailed and no
//	partial result is returned.
//
// Ordering
//
//	Parallel results are concatenated in slice order; callers must rely on
//	set membership only, not on enumeration order.
//
// Complexity (V = |vertices|, E = |edges|, P = workers, R = rounds)
//
//   - RandomCut:         O(V + E)
//   - RandomCutParallel: O((V + E) / P) per worker plus O(V + E) merge
//   - BestOfRandom:      O(R · (V + E)) per worker
package heuristic
