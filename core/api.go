// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only queries over a built Graph.
// Policy:
//   - No mutation after NewGraph; every method here is safe for concurrent use.
//   - Slices returned by Neighbors and AllEdges alias internal storage.

package core

// Size returns the number of vertices n.
func (g *Graph) Size() int {
	return g.n
}

// EdgeSize returns the number of distinct undirected edges.
func (g *Graph) EdgeSize() int {
	return len(g.edges)
}

// Neighbors returns the vertices adjacent to v in insertion order.
//
// The returned slice is the graph's own storage and must not be modified.
// An out-of-range v yields nil.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	return g.adjacency[v]
}

// Degree returns the number of neighbors of v, or 0 if v is out of range.
func (g *Graph) Degree(v int) int {
	return len(g.Neighbors(v))
}

// HasEdge reports whether the undirected edge {a, b} exists.
//
// Complexity: O(min(deg a, deg b)).
func (g *Graph) HasEdge(a, b int) bool {
	if a < 0 || a >= g.n || b < 0 || b >= g.n || a == b {
		return false
	}
	from, to := a, b
	if len(g.adjacency[b]) < len(g.adjacency[a]) {
		from, to = b, a
	}
	for _, u := range g.adjacency[from] {
		if u == to {
			return true
		}
	}
	return false
}

// AllEdges returns every distinct edge once, canonical (A < B), in the order
// in which each edge first appeared in the construction input.
//
// The returned slice is the graph's own storage and must not be modified.
func (g *Graph) AllEdges() []Edge {
	return g.edges
}

// Edges returns a copy of AllEdges that the caller may modify freely.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}
