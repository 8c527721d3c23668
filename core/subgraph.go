// SPDX-License-Identifier: MIT
//
// File: subgraph.go
// Role: induced subgraphs with vertex relabeling.

package core

import "fmt"

const methodInduced = "Induced"

// Induced returns the subgraph of g induced by vertices, relabeled so that
// vertices[i] becomes vertex i. Edges keep their relative AllEdges order.
// vertices must be distinct and in range.
//
// Complexity: O(V + E).
func (g *Graph) Induced(vertices []int) (*Graph, error) {
	label := make([]int, g.n)
	for i := range label {
		label[i] = -1
	}
	for i, v := range vertices {
		if v < 0 || v >= g.n {
			return nil, fmt.Errorf("%s: vertex %d, n=%d: %w", methodInduced, v, g.n, ErrVertexOutOfRange)
		}
		if label[v] >= 0 {
			return nil, fmt.Errorf("%s: vertex %d listed twice: %w", methodInduced, v, ErrMalformedInput)
		}
		label[v] = i
	}

	sub := &Graph{
		n:         len(vertices),
		adjacency: make([][]int, len(vertices)),
	}
	for _, e := range g.edges {
		a, b := label[e.A], label[e.B]
		if a < 0 || b < 0 {
			continue
		}
		sub.link(NewEdge(a, b))
	}
	return sub, nil
}
