// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, options and the Solver boundary.

package exact

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/maxcut/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("exact: graph is nil")

	// ErrModelNil is returned when a Solver receives a nil model.
	ErrModelNil = errors.New("exact: model is nil")

	// ErrTooLarge is returned when the instance exceeds the solver's vertex cap.
	ErrTooLarge = errors.New("exact: instance too large")

	// ErrTimeout is returned when the context expires before the search ends.
	ErrTimeout = errors.New("exact: time limit exceeded")

	// ErrBadSolution is returned when a Solver's partition does not fit the model.
	ErrBadSolution = errors.New("exact: solver returned malformed partition")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("exact: invalid option supplied")
)

const (
	methodMaxCut = "MaxCut"
	methodSolve  = "BranchAndBound.Solve"

	// DefaultMaxVertices bounds BranchAndBound to instances it finishes in
	// reasonable time on sparse inputs.
	DefaultMaxVertices = 40

	// checkMask sets the node interval between context checks (4096).
	checkMask = 4095
)

// Solver computes a maximum cut of a Model.
type Solver interface {
	// Solve returns a partition of the model's vertices maximizing the cut.
	// It returns an error wrapping ErrTimeout if ctx expires first.
	Solve(ctx context.Context, m *Model) (core.Partition, error)
}

// Option configures BranchAndBound.
type Option func(*Options)

// Options holds BranchAndBound parameters.
type Options struct {
	// MaxVertices rejects larger instances with ErrTooLarge.
	MaxVertices int

	// SeedBound starts the search from the greedy cut as incumbent.
	SeedBound bool

	// Logger receives a Debug record per solve; defaults to a no-op logger.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns MaxVertices=DefaultMaxVertices, greedy seeding on,
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxVertices: DefaultMaxVertices,
		SeedBound:   true,
		Logger:      zap.NewNop(),
	}
}

// WithMaxVertices sets the vertex cap; k must be positive.
func WithMaxVertices(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: MaxVertices must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxVertices = k
	}
}

// WithSeedBound toggles the greedy incumbent.
func WithSeedBound(on bool) Option {
	return func(o *Options) { o.SeedBound = on }
}

// WithLogger attaches a zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
