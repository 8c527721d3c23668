// SPDX-License-Identifier: MIT
//
// File: bb.go
// Role: built-in exact solver (depth-first Branch-and-Bound).
//
// Search:
//  1. Vertices are decided in index order; vertex 0 is pinned to side 0.
//  2. Deciding v settles every edge (u, v) with u < v, so the gain of each
//     side is known immediately from the back-neighbors of v.
//  3. Bound = cut so far + edges not yet settled. It never underestimates the
//     best completion, so subtrees with bound ≤ incumbent are pruned.
//  4. The side with the larger gain is tried first, which tightens the
//     incumbent early while remaining deterministic.
//  5. Context checks run every 4096 node events.

package exact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/bfs"
	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/dfs"
	"github.com/katalvlaran/maxcut/greedy"
)

// BranchAndBound is the built-in exact Solver.
type BranchAndBound struct {
	opts Options
}

// NewBranchAndBound returns a solver configured by opts. Invalid options are
// reported by Solve as ErrOptionViolation.
func NewBranchAndBound(opts ...Option) *BranchAndBound {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &BranchAndBound{opts: o}
}

// bbEngine holds all search state for one Solve call.
type bbEngine struct {
	ctx     context.Context
	n, m    int
	back    [][]int // back[v]: neighbors u < v
	settled []int   // settled[v]: edges with both endpoints < v
	steps   int
	stopped bool

	side     core.Partition
	bestSide core.Partition
	bestCut  int
}

// deadlineCheck tests ctx every 4096 node events.
func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if e.stopped {
		return true
	}
	if e.steps&checkMask != 0 {
		return false
	}
	if e.ctx.Err() != nil {
		e.stopped = true
	}
	return e.stopped
}

// prepare builds back-neighbor lists and settled-edge prefix counts.
func (e *bbEngine) prepare(m *Model) {
	e.back = make([][]int, e.n)
	for _, ed := range m.Edges {
		e.back[ed.B] = append(e.back[ed.B], ed.A)
	}
	e.settled = make([]int, e.n+1)
	for v := 0; v < e.n; v++ {
		e.settled[v+1] = e.settled[v] + len(e.back[v])
	}
}

// seed installs the greedy cut as incumbent, flipped so vertex 0 is on side 0.
func (e *bbEngine) seed(m *Model) error {
	g, err := core.NewGraph(m.Vertices, m.Edges)
	if err != nil {
		return err
	}
	cut, side := greedy.CutWithPartition(g)
	if e.n > 0 && side[0] {
		for v := range side {
			side[v] = !side[v]
		}
	}
	copy(e.bestSide, side)
	e.bestCut = len(cut)
	return nil
}

// dfs decides vertex v given the sides of 0..v-1 and the current cut size.
func (e *bbEngine) dfs(v, cut int) {
	if e.deadlineCheck() {
		return
	}
	if cut+(e.m-e.settled[v]) <= e.bestCut {
		return
	}
	if v == e.n {
		e.bestCut = cut
		copy(e.bestSide, e.side)
		return
	}

	onTrue := 0 // back-neighbors on side 1, cut when v goes to side 0
	for _, u := range e.back[v] {
		if e.side[u] {
			onTrue++
		}
	}
	gainFalse, gainTrue := onTrue, len(e.back[v])-onTrue

	first, firstGain, secondGain := false, gainFalse, gainTrue
	if gainTrue > gainFalse {
		first, firstGain, secondGain = true, gainTrue, gainFalse
	}

	e.side[v] = first
	e.dfs(v+1, cut+firstGain)
	e.side[v] = !first
	e.dfs(v+1, cut+secondGain)
	e.side[v] = false
}

// Solve returns a maximum-cut partition of m.
//
// Errors:
//   - ErrModelNil, ErrOptionViolation, ErrTooLarge on bad input.
//   - ErrTimeout wrapping ctx.Err() if ctx expires first.
func (s *BranchAndBound) Solve(ctx context.Context, m *Model) (core.Partition, error) {
	if m == nil {
		return nil, ErrModelNil
	}
	if s.opts.err != nil {
		return nil, s.opts.err
	}
	if m.Vertices > s.opts.MaxVertices {
		return nil, fmt.Errorf("%s: %d vertices > %d: %w", methodSolve, m.Vertices, s.opts.MaxVertices, ErrTooLarge)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodSolve, ErrTimeout, err)
	}

	e := bbEngine{
		ctx:      ctx,
		n:        m.Vertices,
		m:        len(m.Edges),
		side:     core.NewPartition(m.Vertices),
		bestSide: core.NewPartition(m.Vertices),
		bestCut:  -1,
	}
	e.prepare(m)
	if s.opts.SeedBound {
		if err := e.seed(m); err != nil {
			return nil, fmt.Errorf("%s: seed: %w", methodSolve, err)
		}
	}

	if e.n == 0 {
		return e.bestSide, nil
	}
	e.dfs(1, 0)

	if e.stopped {
		return nil, fmt.Errorf("%s: after %d nodes: %w: %w", methodSolve, e.steps, ErrTimeout, ctx.Err())
	}

	s.opts.Logger.Debug("branch and bound done",
		zap.Int("vertices", e.n),
		zap.Int("edges", e.m),
		zap.Int("nodes", e.steps),
		zap.Int("cut", e.bestCut),
		zap.Bool("seeded", s.opts.SeedBound),
	)
	return e.bestSide, nil
}

// MaxCut returns a maximum cut of g, in AllEdges order. The graph is split
// into connected components; bipartite components are cut completely and
// the rest are handed to solver as separate models, so MaxVertices applies
// per component. A nil solver means NewBranchAndBound().
func MaxCut(ctx context.Context, g *core.Graph, solver Solver) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if solver == nil {
		solver = NewBranchAndBound()
	}

	side := core.NewPartition(g.Size())
	for _, comp := range dfs.Components(g) {
		if len(comp) < 2 {
			continue
		}
		sub, err := g.Induced(comp)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodMaxCut, err)
		}
		part, ok := bfs.TwoColor(sub)
		if !ok {
			if part, err = solver.Solve(ctx, BuildModel(sub)); err != nil {
				return nil, fmt.Errorf("%s: component at %d: %w", methodMaxCut, comp[0], err)
			}
			if len(part) != len(comp) {
				return nil, fmt.Errorf("%s: got %d sides for %d vertices: %w", methodMaxCut, len(part), len(comp), ErrBadSolution)
			}
		}
		for i, v := range comp {
			side[v] = part[i]
		}
	}
	return side.CutEdges(g), nil
}
