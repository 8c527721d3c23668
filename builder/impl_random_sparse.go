// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n, p) sampler.
//
// Contract:
//   • n ≥ 1, 0 ≤ p ≤ 1.
//   • An RNG is required only for 0 < p < 1; p ∈ {0, 1} is deterministic.
//   • Trial order: i asc, j asc with j > i. Fixed seed ⇒ identical graph.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/maxcut/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples G(n, p).
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < minRandomSparseVertices {
		return nil, tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	var edges []core.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var keep bool
			switch {
			case p == probMin:
				keep = false
			case p == probMax:
				keep = true
			default:
				keep = cfg.rng.Float64() < p
			}
			if keep {
				edges = append(edges, core.Edge{A: i, B: j})
			}
		}
	}
	return finish(methodRandomSparse, n, edges)
}
