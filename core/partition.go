// SPDX-License-Identifier: MIT
//
// File: partition.go
// Role: Partition (side table) and cut edge classification.

package core

import (
	"errors"
	"fmt"
)

// ErrNotACut is returned by ValidateCut when an edge set cannot be the cut of
// any partition over the graph.
var ErrNotACut = errors.New("core: edge set is not a cut")

// Partition assigns every vertex to side 0 (false) or side 1 (true).
// Index i holds the side of vertex i.
type Partition []bool

// NewPartition returns a partition of n vertices, all on side 0.
func NewPartition(n int) Partition {
	return make(Partition, n)
}

// Side returns 0 or 1 for vertex v.
func (p Partition) Side(v int) int {
	if p[v] {
		return 1
	}
	return 0
}

// Separates reports whether the endpoints of e lie on different sides.
func (p Partition) Separates(e Edge) bool {
	return p[e.A] != p[e.B]
}

// CutEdges returns the subsequence of g.AllEdges() separated by p.
// p must cover every vertex of g.
//
// Complexity: O(E).
func (p Partition) CutEdges(g *Graph) []Edge {
	return p.AppendCut(nil, g.AllEdges())
}

// AppendCut appends to dst every edge of edges separated by p and returns the
// extended slice. It is the building block for sliced, parallel classification.
func (p Partition) AppendCut(dst []Edge, edges []Edge) []Edge {
	for _, e := range edges {
		if p[e.A] != p[e.B] {
			dst = append(dst, e)
		}
	}
	return dst
}

// CutSize counts the edges of g separated by p without allocating.
func (p Partition) CutSize(g *Graph) int {
	var k int
	for _, e := range g.AllEdges() {
		if p[e.A] != p[e.B] {
			k++
		}
	}
	return k
}

// ValidateCut checks that cut is a duplicate-free set of canonical edges of g.
// It does not check that some partition induces exactly this set; use
// SidesConsistent for that when the partition is known.
//
// Complexity: O(len(cut)) expected plus O(deg) per HasEdge.
func ValidateCut(g *Graph, cut []Edge) error {
	seen := newEdgeSet(len(cut))
	for i, e := range cut {
		if e.A >= e.B {
			return fmt.Errorf("edge #%d %v not canonical: %w", i, e, ErrNotACut)
		}
		if !g.HasEdge(e.A, e.B) {
			return fmt.Errorf("edge #%d %v not in graph: %w", i, e, ErrNotACut)
		}
		if !seen.add(e) {
			return fmt.Errorf("edge #%d %v repeated: %w", i, e, ErrNotACut)
		}
	}
	return nil
}

// SidesConsistent reports whether cut is exactly the cut edge set of p over g,
// ignoring enumeration order.
func SidesConsistent(g *Graph, p Partition, cut []Edge) bool {
	if len(p) != g.Size() {
		return false
	}
	in := newEdgeSet(len(cut))
	for _, e := range cut {
		if !g.HasEdge(e.A, e.B) || !p.Separates(e) || !in.add(e) {
			return false
		}
	}
	return len(in) == p.CutSize(g)
}
