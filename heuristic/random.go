// Package heuristic - single-trial random cuts.
package heuristic

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/core"
)

// RandomPartition assigns each vertex of g to side 1 with probability 1/2.
func RandomPartition(g *core.Graph, src Source) core.Partition {
	side := core.NewPartition(g.Size())
	for v := range side {
		side[v] = src.Bool(half)
	}
	return side
}

// RandomCut returns the cut of one random partition of g, in AllEdges order.
// Only WithSeed, WithSource and WithSourceFactory (stream 0) affect it; a nil
// graph yields nil. RandomCut has no error return, so invalid option values
// (such as a negative worker count) are ignored rather than reported; use
// RandomCutParallel to have them surface as ErrOptionViolation.
func RandomCut(g *core.Graph, opts ...Option) []core.Edge {
	if g == nil {
		return nil
	}
	o, _ := resolve(opts)
	src := o.sequentialSource()
	if o.SourceFactory != nil {
		src = o.SourceFactory(0)
	}
	return RandomPartition(g, src).CutEdges(g)
}

// RandomPartitionParallel builds a random partition with P workers, each
// filling a private buffer for its contiguous vertex slice. The buffers are
// merged only after every worker has returned.
//
// Returns ErrGraphNil, ErrOptionViolation, or ErrTaskFailed.
func RandomPartitionParallel(g *core.Graph, opts ...Option) (core.Partition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return randomPartitionParallel(g, &o)
}

func randomPartitionParallel(g *core.Graph, o *Options) (core.Partition, error) {
	p := o.workers()
	next := o.sourceFactory()
	slices := splitRange(g.Size(), p)
	buffers := make([][]bool, p)

	err := runTasks(p, func(i int) error {
		buf := make([]bool, slices[i].len())
		src := next(uint64(i))
		for k := range buf {
			buf[k] = src.Bool(half)
		}
		buffers[i] = buf
		return nil
	})
	if err != nil {
		return nil, err
	}

	side := core.NewPartition(g.Size())
	for i, s := range slices {
		copy(side[s.lo:s.hi], buffers[i])
	}
	return side, nil
}

// ClassifyParallel returns the edges of g separated by side, classifying P
// contiguous slices of AllEdges concurrently. side must not change while the
// call runs. Output is the concatenation of per-slice results in slice order.
func ClassifyParallel(g *core.Graph, side core.Partition, workers int) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if workers < 1 {
		o := DefaultOptions()
		workers = o.workers()
	}
	edges := g.AllEdges()
	slices := splitRange(len(edges), workers)
	parts := make([][]core.Edge, workers)

	err := runTasks(workers, func(i int) error {
		s := slices[i]
		parts[i] = side.AppendCut(nil, edges[s.lo:s.hi])
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	cut := make([]core.Edge, 0, total)
	for _, part := range parts {
		cut = append(cut, part...)
	}
	return cut, nil
}

// RandomCutParallel is the parallel form of RandomCut: a parallel random
// partition followed by parallel edge classification.
//
// Returns ErrGraphNil, ErrOptionViolation, or an error wrapping ErrTaskFailed.
func RandomCutParallel(g *core.Graph, opts ...Option) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	side, err := randomPartitionParallel(g, &o)
	if err != nil {
		return nil, fmt.Errorf("%s: assign: %w", methodRandomCutParallel, err)
	}
	cut, err := ClassifyParallel(g, side, o.workers())
	if err != nil {
		return nil, fmt.Errorf("%s: classify: %w", methodRandomCutParallel, err)
	}

	o.Logger.Debug("random cut",
		zap.Int("vertices", g.Size()),
		zap.Int("edges", g.EdgeSize()),
		zap.Int("workers", o.workers()),
		zap.Int("cut", len(cut)),
	)
	return cut, nil
}
