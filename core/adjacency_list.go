// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Adjacency-list storage helpers used during construction.

package core

// edgeSet tracks canonical edges already inserted during construction.
// It is discarded once NewGraph returns.
type edgeSet map[uint64]struct{}

func newEdgeSet(hint int) edgeSet {
	return make(edgeSet, hint)
}

// add records e and reports whether it was new.
func (s edgeSet) add(e Edge) bool {
	k := uint64(uint32(e.A))<<32 | uint64(uint32(e.B))
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}

// link appends a new canonical edge to the catalog and both adjacency rows.
func (g *Graph) link(e Edge) {
	g.edges = append(g.edges, e)
	g.adjacency[e.A] = append(g.adjacency[e.A], e.B)
	g.adjacency[e.B] = append(g.adjacency[e.B], e.A)
}
