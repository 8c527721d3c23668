// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: AdjacencyMatrix construction, queries and conversion back to core.Graph.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/maxcut/core"
)

// MaxDenseVertices bounds the vertex count accepted by NewAdjacencyMatrix.
const MaxDenseVertices = 1 << 13

// AdjacencyMatrix is a symmetric n×n boolean matrix stored row-major.
// The diagonal is always false.
type AdjacencyMatrix struct {
	n    int
	data []bool
}

// NewAdjacencyMatrix builds the dense adjacency of g.
// Returns ErrNilGraph or ErrTooLarge.
//
// Complexity: O(n² + E) time, O(n²) space.
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Size() > MaxDenseVertices {
		return nil, fmt.Errorf("NewAdjacencyMatrix: n=%d > %d: %w", g.Size(), MaxDenseVertices, ErrTooLarge)
	}
	m := &AdjacencyMatrix{n: g.Size(), data: make([]bool, g.Size()*g.Size())}
	for _, e := range g.AllEdges() {
		m.data[e.A*m.n+e.B] = true
		m.data[e.B*m.n+e.A] = true
	}
	return m, nil
}

// FromRows builds a matrix from row-major data, validating shape, symmetry
// and an empty diagonal.
func FromRows(rows [][]bool) (*AdjacencyMatrix, error) {
	n := len(rows)
	m := &AdjacencyMatrix{n: n, data: make([]bool, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	for i := 0; i < n; i++ {
		if m.data[i*n+i] {
			return nil, fmt.Errorf("FromRows: loop at %d: %w", i, ErrAsymmetric)
		}
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return nil, fmt.Errorf("FromRows: (%d,%d): %w", i, j, ErrAsymmetric)
			}
		}
	}
	return m, nil
}

// Size returns n.
func (m *AdjacencyMatrix) Size() int {
	return m.n
}

// Has reports whether {i, j} is an edge. Out-of-range indices yield false.
func (m *AdjacencyMatrix) Has(i, j int) bool {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return false
	}
	return m.data[i*m.n+j]
}

// Row returns row i; the slice aliases the matrix and must not be modified.
func (m *AdjacencyMatrix) Row(i int) []bool {
	return m.data[i*m.n : (i+1)*m.n]
}

// EdgeCount counts the edges in the upper triangle.
func (m *AdjacencyMatrix) EdgeCount() int {
	var k int
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] {
				k++
			}
		}
	}
	return k
}

// CutSize counts pairs i<j that are adjacent and on different sides of p.
// It never consults core's adjacency lists, which makes it a convenient oracle.
func (m *AdjacencyMatrix) CutSize(p core.Partition) int {
	var k int
	for i := 0; i < m.n; i++ {
		row := m.Row(i)
		for j := i + 1; j < m.n; j++ {
			if row[j] && p[i] != p[j] {
				k++
			}
		}
	}
	return k
}

// ToGraph converts the matrix back into a core.Graph with edges enumerated
// row by row (i asc, j asc, j > i).
func (m *AdjacencyMatrix) ToGraph() (*core.Graph, error) {
	edges := make([]core.Edge, 0, m.EdgeCount())
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] {
				edges = append(edges, core.Edge{A: i, B: j})
			}
		}
	}
	return core.NewGraph(m.n, edges)
}
