// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates that the start vertex is not in the graph.
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")
)

// none marks the Parent of roots and of unvisited vertices.
const none = -1

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to result.Order.
	OnExit func(v int) error

	// FullTraversal visits every vertex, starting a new tree from each
	// unvisited vertex in ascending order; the start argument is ignored.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, single-tree mode.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit registers a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithFullTraversal enables forest mode.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult holds the outcome of a DFS traversal.
type DFSResult struct {
	// Order lists vertices in post-order (finish order).
	Order []int

	// Depth is the tree depth per vertex; meaningful only where Visited.
	Depth []int

	// Parent is the tree predecessor per vertex, -1 for roots and unvisited.
	Parent []int

	// Visited marks reached vertices.
	Visited []bool

	// Root is the tree root per visited vertex; in forest mode it labels
	// the connected component by its smallest vertex.
	Root []int
}
