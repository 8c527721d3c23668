// Package heuristic - randomness sources shared by all heuristics.
//
// Concurrency:
//   - A Source is NOT goroutine-safe. Never share one across workers.
//   - Use the factory returned by Options.sourceFactory to obtain one
//     independent stream per worker.
package heuristic

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/rand"
)

// Source samples booleans: Bool(p) is true with probability p.
// Uint64 exposes raw output so that independent child streams can be derived.
type Source interface {
	Bool(p float64) bool
	Uint64() uint64
}

// pcgSource adapts a PCG-backed *rand.Rand to Source.
type pcgSource struct {
	r *rand.Rand
}

// NewSource returns a deterministic Source for seed.
func NewSource(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewSource(seed))}
}

// NewEntropySource returns a Source seeded from the operating system.
func NewEntropySource() Source {
	return NewSource(entropySeed())
}

func (s *pcgSource) Bool(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return s.r.Float64() < p
}

func (s *pcgSource) Uint64() uint64 {
	return s.r.Uint64()
}

// entropySeed reads 8 bytes from crypto/rand, falling back to the clock.
func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return deriveSeed(uint64(time.Now().UnixNano()), 0)
	}
	return binary.LittleEndian.Uint64(b[:])
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with the SplitMix64 finalizer, so neighboring streams are uncorrelated.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// sequentialSource picks the Source for single-goroutine runs.
func (o *Options) sequentialSource() Source {
	switch {
	case o.Source != nil:
		return o.Source
	case o.Seed != 0:
		return NewSource(o.Seed)
	default:
		return NewEntropySource()
	}
}

// sourceFactory returns the per-worker Source constructor for one call.
// Parent seeds are drawn here, in the calling goroutine.
func (o *Options) sourceFactory() func(stream uint64) Source {
	if o.SourceFactory != nil {
		return o.SourceFactory
	}
	var parent uint64
	switch {
	case o.Source != nil:
		parent = o.Source.Uint64()
	case o.Seed != 0:
		parent = o.Seed
	default:
		return func(uint64) Source { return NewEntropySource() }
	}
	return func(stream uint64) Source {
		return NewSource(deriveSeed(parent, stream))
	}
}
