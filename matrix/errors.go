// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the matrix package.

package matrix

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrTooLarge indicates the graph exceeds MaxDenseVertices.
	ErrTooLarge = errors.New("matrix: graph too large for dense representation")

	// ErrNotSquare indicates row-major input whose rows differ in length from the row count.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetric indicates input that is not a valid undirected, loop-free adjacency.
	ErrAsymmetric = errors.New("matrix: adjacency is not symmetric")
)
