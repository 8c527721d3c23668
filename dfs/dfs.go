// Package dfs implements depth-first search (single-source and forest) on core.Graph.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/maxcut/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers all components; otherwise it starts only from start.
// Returns the DFSResult collected so far together with any context or hook
// error that aborted the walk.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.Size()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
		Root:    make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Parent[v] = none
		res.Root[v] = none
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	if !dopts.FullTraversal {
		return res, walker.traverse(start, start, 0)
	}
	for v := 0; v < n; v++ {
		if res.Visited[v] {
			continue
		}
		if err := walker.traverse(v, v, 0); err != nil {
			return res, err
		}
	}
	return res, nil
}

// traverse visits v at the given depth under root, recursing to neighbors.
func (w *dfsWalker) traverse(v, root, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Root[v] = root

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	for _, u := range w.graph.Neighbors(v) {
		if w.res.Visited[u] {
			continue
		}
		w.res.Parent[u] = v
		if err := w.traverse(u, root, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)
	return nil
}
