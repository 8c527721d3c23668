// Package builder generates deterministic core.Graph fixtures for tests,
// benchmarks and examples.
//
// Every constructor validates its parameters, emits edges in a documented,
// stable order and returns a ready *core.Graph. Stochastic constructors draw
// from an explicit RNG configured with WithSeed or WithRand; the same seed
// and parameters always yield the same graph.
//
// Constructors:
//
//   - Cycle(n)                 C_n, n ≥ 3, edges i-(i+1) mod n.
//   - Path(n)                  P_n, n ≥ 1, edges i-(i+1).
//   - Star(n)                  center 0 with leaves 1..n-1, n ≥ 2.
//   - Wheel(n)                 cycle over 1..n-1 plus spokes from 0, n ≥ 4.
//   - Complete(n)              K_n, n ≥ 1, pairs i<j in row order.
//   - CompleteBipartite(a, b)  K_{a,b}, left 0..a-1, right a..a+b-1.
//   - Grid(rows, cols)         4-neighborhood lattice, row-major ids.
//   - RandomSparse(n, p)       Erdős–Rényi G(n, p), requires an RNG for 0<p<1.
//
// Errors are the sentinels in errors.go, wrapped with the constructor name;
// branch on them with errors.Is.
package builder
