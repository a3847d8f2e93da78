// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wavealign/schedule"
	sw "github.com/katalvlaran/wavealign/smithwaterman"
)

// Check is one (policy, workers) combination to verify.
type Check struct {
	Policy  schedule.Policy
	Workers int
}

// Checks returns the cross product of policies and worker counts.
func Checks(policies []schedule.Policy, threads []int) []Check {
	out := make([]Check, 0, len(policies)*len(threads))
	for _, p := range policies {
		for _, w := range threads {
			out = append(out, Check{Policy: p, Workers: w})
		}
	}

	return out
}

// DefaultVerifyParallelism bounds how many checks hold a grid at once.
const DefaultVerifyParallelism = 2

// VerifyOptions bounds the memory of Verify. Zero fields select
// smithwaterman.DefaultMaxCells and DefaultVerifyParallelism.
type VerifyOptions struct {
	MaxCells    int // cell limit of every grid, the reference included
	Parallelism int // checks running at the same time
}

// Verify fills the grid of x and y once serially and once per check, with
// invariant checks enabled, and compares every cell. At most
// opts.Parallelism checks run concurrently; the first failure cancels the
// rest. It returns the reference score.
//
// Errors:
//   - ErrMismatch when a parallel grid differs from the serial one.
//   - any error of the aligner (including invariant violations).
func Verify(ctx context.Context, x, y []byte, s sw.Scoring, checks []Check, opts VerifyOptions) (int32, error) {
	if opts.MaxCells <= 0 {
		opts.MaxCells = sw.DefaultMaxCells
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = DefaultVerifyParallelism
	}
	ref, err := sw.NewGridWithLimit(len(x), len(y), opts.MaxCells)
	if err != nil {
		return 0, err
	}
	if err := sw.FillSerial(ref, x, y, s); err != nil {
		return 0, err
	}
	score, _, _ := ref.Max()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for _, c := range checks {
		c := c
		g.Go(func() error {
			return verifyOne(gctx, x, y, s, c, ref, opts.MaxCells)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return score, nil
}

func verifyOne(ctx context.Context, x, y []byte, s sw.Scoring, c Check, ref *sw.Grid, maxCells int) error {
	al, err := sw.NewAligner(
		sw.WithPolicy(c.Policy),
		sw.WithWorkers(c.Workers),
		sw.WithScoring(s),
		sw.WithInvariantChecks(true),
		sw.WithMaxCells(maxCells),
	)
	if err != nil {
		return err
	}
	defer al.Close()

	g, err := al.NewGrid(len(x), len(y))
	if err != nil {
		return err
	}
	if _, err := al.Fill(ctx, g, x, y); err != nil {
		return fmt.Errorf("bench: verify %v with %d workers: %w", c.Policy, c.Workers, err)
	}
	if !ref.Equal(g) {
		return fmt.Errorf("%w: %v with %d workers", ErrMismatch, c.Policy, c.Workers)
	}

	return nil
}
