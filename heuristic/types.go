// Package heuristic - options, sentinel errors and defaults.
package heuristic

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Sentinel errors for heuristic execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("heuristic: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heuristic: invalid option supplied")

	// ErrTaskFailed is returned when a worker goroutine errors or panics.
	// The whole call fails; no partial result is returned.
	ErrTaskFailed = errors.New("heuristic: worker task failed")
)

const (
	methodRandomCutParallel = "RandomCutParallel"
	methodBestOfRandom      = "BestOfRandom"

	// fallbackWorkers is used when the CPU count cannot be determined.
	fallbackWorkers = 8

	// half is the per-vertex probability of landing on side 1.
	half = 0.5
)

// Option configures heuristic behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by the
// parallel entry points.
type Option func(*Options)

// Options holds the parameters and hooks of a heuristic run.
type Options struct {
	// Ctx is checked between BestOfRandom rounds.
	Ctx context.Context

	// Seed, if non-zero, makes every run reproducible.
	Seed uint64

	// Source, if set, takes precedence over Seed. Sequential runs draw from it
	// directly; parallel runs draw one parent seed from it per call.
	Source Source

	// SourceFactory, if set, takes precedence over Source and Seed and is
	// called inside each worker with a unique stream id.
	SourceFactory func(stream uint64) Source

	// Workers is the number of goroutines per fork. 0 means runtime.NumCPU().
	Workers int

	// MaxRounds caps BestOfRandom rounds. 0 means unlimited.
	MaxRounds int

	// OnRound is called after each BestOfRandom round with the round index
	// and the size of the best cut kept so far.
	OnRound func(round, best int)

	// Logger receives debug records; defaults to a no-op logger.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with a background context, entropy seeding,
// one worker per CPU, unlimited rounds, a no-op hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnRound: func(int, int) {},
		Logger:  zap.NewNop(),
	}
}

// WithContext sets the context checked between BestOfRandom rounds.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed fixes the randomness. Seed 0 keeps entropy seeding.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithSource supplies an explicit randomness source.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Source = src
		}
	}
}

// WithSourceFactory supplies a per-worker Source constructor. The factory is
// invoked concurrently from worker goroutines and must be safe for that.
func WithSourceFactory(fn func(stream uint64) Source) Option {
	return func(o *Options) {
		if fn != nil {
			o.SourceFactory = fn
		}
	}
}

// WithWorkers sets the number of goroutines per fork.
//
//	p > 0:  use p workers
//	p == 0: one per CPU
//	p < 0:  invalid option → ErrOptionViolation
func WithWorkers(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, p)
			return
		}
		o.Workers = p
	}
}

// WithMaxRounds caps the number of BestOfRandom rounds (0 = unlimited).
func WithMaxRounds(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxRounds = k
	}
}

// WithOnRound registers a callback run after every BestOfRandom round.
func WithOnRound(fn func(round, best int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithLogger attaches a zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over the defaults and reports any recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// workers returns the effective fork width.
func (o *Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	if p := runtime.NumCPU(); p > 0 {
		return p
	}
	return fallbackWorkers
}
