// SPDX-License-Identifier: MIT

// Package smithwaterman - functional configuration.
//
// Option / Options follow the usual pattern: defaults live in constants and in
// DefaultOptions, WithX constructors panic only on nonsensical values
// (programmer error), and gatherOptions resolves a list of options.
// The scoring scheme is validated by NewAligner instead of panicking, since
// it usually comes from user configuration.

package smithwaterman

import (
	"runtime"

	"github.com/katalvlaran/wavealign/schedule"
)

// Scoring defaults.
const (
	DefaultMatch    int32 = 3
	DefaultMismatch int32 = -3
	DefaultGap      int32 = -2
)

// DefaultMaxCells caps the score grid at 2^30 cells (4 GiB of int32).
const DefaultMaxCells = 1 << 30

const (
	panicNilPolicy   = "smithwaterman: WithPolicy: policy must not be nil"
	panicBadWorkers  = "smithwaterman: WithWorkers: workers must be >= 1"
	panicBadMaxCells = "smithwaterman: WithMaxCells: limit must be >= 1"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration of an Aligner.
type Options struct {
	scoring         Scoring
	policy          schedule.Policy
	workers         int
	checkInvariants bool
	maxCells        int
}

// DefaultOptions returns the default configuration: scoring 3/-3/-2,
// contiguous-block policy, GOMAXPROCS workers, no invariant checks.
func DefaultOptions() Options {
	return Options{
		scoring:  DefaultScoring(),
		policy:   schedule.Block{},
		workers:  runtime.GOMAXPROCS(0),
		maxCells: DefaultMaxCells,
	}
}

// WithScoring sets the match/mismatch/gap scheme.
func WithScoring(s Scoring) Option {
	return func(o *Options) { o.scoring = s }
}

// WithPolicy sets the work-distribution policy. Panics on nil.
func WithPolicy(p schedule.Policy) Option {
	if p == nil {
		panic(panicNilPolicy)
	}

	return func(o *Options) { o.policy = p }
}

// WithWorkers sets the number of workers. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// WithInvariantChecks enables the debug checks: every chunk list is verified
// against its diagonal and every predecessor read is checked for having been
// written. Costs one extra byte per cell and a branch per read.
func WithInvariantChecks(on bool) Option {
	return func(o *Options) { o.checkInvariants = on }
}

// WithMaxCells caps the number of grid cells Align may allocate. Panics if n < 1.
func WithMaxCells(n int) Option {
	if n < 1 {
		panic(panicBadMaxCells)
	}

	return func(o *Options) { o.maxCells = n }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
