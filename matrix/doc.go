// Package matrix provides a dense, symmetric boolean adjacency matrix for
// small graphs.
//
// The adjacency list in package core is the representation every algorithm
// runs on. AdjacencyMatrix is an O(n²) companion used where constant-time
// pair lookups matter more than memory: the exact solver's inner loop and
// test oracles that recount cuts independently of core.
//
// Construction is guarded by MaxDenseVertices so that a large graph cannot
// accidentally allocate gigabytes.
package matrix
