// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, sentinel errors and the NewGraph constructor.
// Policy:
//   - Canonical edge form (A < B) is enforced here and nowhere else.
//   - Construction validates every endpoint; duplicates are dropped silently.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrMalformedInput is the umbrella for every input that cannot form a Graph.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrNegativeSize indicates a negative vertex count.
	ErrNegativeSize = fmt.Errorf("%w: negative vertex count", ErrMalformedInput)

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex out of range", ErrMalformedInput)

	// ErrLoopNotAllowed indicates a self-loop; loops are never part of a cut.
	ErrLoopNotAllowed = fmt.Errorf("%w: self-loop not allowed", ErrMalformedInput)
)

const methodNewGraph = "NewGraph"

// Edge is an undirected edge between two distinct vertices.
//
// Edges produced by this package are always canonical (A < B); use NewEdge
// when building one by hand so that equality comparisons stay meaningful.
type Edge struct {
	A int
	B int
}

// NewEdge returns the canonical form of the pair (a, b).
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// String renders the edge as "(a, b)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.A, e.B)
}

// Graph is an immutable undirected simple graph over vertices 0..n-1.
//
// adjacency[v] holds the neighbors of v in insertion order; edges holds every
// distinct edge once, canonical, in first-insertion order.
type Graph struct {
	n         int
	adjacency [][]int
	edges     []Edge
}

// NewGraph builds a Graph with n vertices from the given edge list.
//
// Endpoints are validated against [0, n) and self-loops are rejected; both
// cases return an error wrapping ErrMalformedInput. Repeated edges, in either
// orientation, are ignored after their first occurrence, so the resulting
// neighbor and edge order is fully determined by the input order.
//
// Complexity: O(n + len(edges)) time and space.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewGraph, n, ErrNegativeSize)
	}

	g := &Graph{
		n:         n,
		adjacency: make([][]int, n),
		edges:     make([]Edge, 0, len(edges)),
	}

	seen := newEdgeSet(len(edges))
	for i, raw := range edges {
		if err := g.checkEndpoints(raw); err != nil {
			return nil, fmt.Errorf("%s: edge #%d %v: %w", methodNewGraph, i, raw, err)
		}
		e := NewEdge(raw.A, raw.B)
		if !seen.add(e) {
			continue
		}
		g.link(e)
	}

	return g, nil
}

// checkEndpoints validates a single raw edge against the vertex range.
func (g *Graph) checkEndpoints(e Edge) error {
	if e.A < 0 || e.A >= g.n || e.B < 0 || e.B >= g.n {
		return fmt.Errorf("n=%d: %w", g.n, ErrVertexOutOfRange)
	}
	if e.A == e.B {
		return ErrLoopNotAllowed
	}
	return nil
}
