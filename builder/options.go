// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// options.go - functional options for stochastic constructors.
//
// Contract:
//   • Option constructors panic on meaningless input (nil RNG); constructors never panic.
//   • No globals: everything flows through builderConfig.

package builder

import "golang.org/x/exp/rand"

// Option customizes a stochastic constructor.
type Option func(*builderConfig)

// builderConfig holds the resolved knobs; rng == nil means "no randomness".
type builderConfig struct {
	rng *rand.Rand
}

// WithSeed attaches a PCG-backed RNG seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
