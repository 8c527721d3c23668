// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_topology.go - deterministic classic topologies.
//
// Contract:
//   • Validate sizes first; return ErrTooFewVertices wrapped with the method tag.
//   • Emit edges in the order documented on each constructor.
//
// Complexity: O(V + E) per constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxcut/core"
)

const (
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"

	minCycleNodes    = 3
	minPathNodes     = 1
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minPartitionSize = 1
	minGridDim       = 1
)

func tooFew(method, what string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, what, got, min, ErrTooFewVertices)
}

// finish hands the edge list to core and tags any failure with the method.
func finish(method string, n int, edges []core.Edge) (*core.Graph, error) {
	g, err := core.NewGraph(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return g, nil
}

// Cycle builds C_n with edges i-(i+1) mod n, i ascending.
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, tooFew(methodCycle, "n", n, minCycleNodes)
	}
	edges := make([]core.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, core.NewEdge(i, (i+1)%n))
	}
	return finish(methodCycle, n, edges)
}

// Path builds P_n with edges i-(i+1), i ascending.
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, tooFew(methodPath, "n", n, minPathNodes)
	}
	edges := make([]core.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, core.Edge{A: i, B: i + 1})
	}
	return finish(methodPath, n, edges)
}

// Star builds a star with center 0 and leaves 1..n-1.
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, tooFew(methodStar, "n", n, minStarNodes)
	}
	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{A: 0, B: i})
	}
	return finish(methodStar, n, edges)
}

// Wheel builds W_n: the cycle 1..n-1 followed by spokes 0-i.
func Wheel(n int) (*core.Graph, error) {
	if n < minWheelNodes {
		return nil, tooFew(methodWheel, "n", n, minWheelNodes)
	}
	rim := n - 1
	edges := make([]core.Edge, 0, 2*rim)
	for i := 0; i < rim; i++ {
		edges = append(edges, core.NewEdge(1+i, 1+(i+1)%rim))
	}
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{A: 0, B: i})
	}
	return finish(methodWheel, n, edges)
}

// Complete builds K_n with pairs (i, j), i<j, in row order.
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, tooFew(methodComplete, "n", n, minCompleteNodes)
	}
	edges := make([]core.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.Edge{A: i, B: j})
		}
	}
	return finish(methodComplete, n, edges)
}

// CompleteBipartite builds K_{a,b}: left vertices 0..a-1, right a..a+b-1,
// edges left-major.
func CompleteBipartite(a, b int) (*core.Graph, error) {
	if a < minPartitionSize {
		return nil, tooFew(methodCompleteBipartite, "a", a, minPartitionSize)
	}
	if b < minPartitionSize {
		return nil, tooFew(methodCompleteBipartite, "b", b, minPartitionSize)
	}
	edges := make([]core.Edge, 0, a*b)
	for i := 0; i < a; i++ {
		for j := 0; j < b; j++ {
			edges = append(edges, core.Edge{A: i, B: a + j})
		}
	}
	return finish(methodCompleteBipartite, a+b, edges)
}

// Grid builds a rows×cols lattice; vertex (r, c) has id r*cols+c. For each
// vertex in row-major order the right edge precedes the down edge.
func Grid(rows, cols int) (*core.Graph, error) {
	if rows < minGridDim {
		return nil, tooFew(methodGrid, "rows", rows, minGridDim)
	}
	if cols < minGridDim {
		return nil, tooFew(methodGrid, "cols", cols, minGridDim)
	}
	edges := make([]core.Edge, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				edges = append(edges, core.Edge{A: v, B: v + 1})
			}
			if r+1 < rows {
				edges = append(edges, core.Edge{A: v, B: v + cols})
			}
		}
	}
	return finish(methodGrid, rows*cols, edges)
}
