// Package heuristic - multi-round best-of-random racer.
package heuristic

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/core"
)

// Target returns the cut size at which BestOfRandom stops for g:
// min(n/2, ⌈E/2⌉). The n/2 term is a loose heuristic bound; the ⌈E/2⌉ cap
// is reached by a single random trial with positive probability on every
// graph, which guarantees termination. On sparse graphs this stops earlier
// than a plain n/2 rule would: a 5-leaf star plus 4 isolated vertices
// targets 3 cut edges, not 5.
func Target(g *core.Graph) float64 {
	target := 0.5 * float64(g.Size())
	if reachable := float64((g.EdgeSize() + 1) / 2); reachable < target {
		target = reachable
	}
	return target
}

// BestOfRandom repeats rounds of P parallel full-graph random trials and
// keeps the largest cut seen, until the kept cut reaches Target(g), the
// MaxRounds cap is hit, or Ctx is done. The kept size never decreases.
//
// On context expiry the best cut so far is returned together with the
// wrapped context error. A failed worker fails the call with ErrTaskFailed
// and no cut.
func BestOfRandom(g *core.Graph, opts ...Option) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	p := o.workers()
	next := o.sourceFactory()
	target := Target(g)
	best := []core.Edge{}
	trials := make([][]core.Edge, p)

	for round := 0; float64(len(best)) < target; round++ {
		if o.MaxRounds > 0 && round >= o.MaxRounds {
			o.Logger.Debug("round cap reached", zap.Int("rounds", round), zap.Int("best", len(best)))
			break
		}
		if err := o.Ctx.Err(); err != nil {
			return best, fmt.Errorf("%s: round %d: %w", methodBestOfRandom, round, err)
		}

		err := runTasks(p, func(i int) error {
			src := next(uint64(round*p + i))
			trials[i] = RandomPartition(g, src).CutEdges(g)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", methodBestOfRandom, round, err)
		}

		for _, cut := range trials {
			if len(cut) > len(best) {
				best = cut
			}
		}

		o.OnRound(round, len(best))
		o.Logger.Debug("round done",
			zap.Int("round", round),
			zap.Int("best", len(best)),
			zap.Float64("target", target),
		)
	}

	return best, nil
}
