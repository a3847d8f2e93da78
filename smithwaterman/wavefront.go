// SPDX-License-Identifier: MIT

package smithwaterman

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/wavealign/schedule"
)

// DiagonalBounds returns the valid row range of anti-diagonal k = i+j for
// sequences of lengths n and m, as the half-open interval
// [max(1, k-m), min(n, k-1)+1). ok is false when the diagonal holds no
// interior cell (k < 2, k > n+m, or degenerate lengths).
func DiagonalBounds(k, n, m int) (r schedule.Range, ok bool) {
	r = schedule.Range{Lo: max(1, k-m), Hi: min(n, k-1) + 1}

	return r, !r.Empty()
}

// Diagonals returns the number of anti-diagonals holding interior cells, n+m-1.
func Diagonals(n, m int) int {
	if n < 1 || m < 1 {
		return 0
	}

	return n + m - 1
}

// Aligner runs the wavefront fill with a fixed policy and worker pool.
// An Aligner is safe for concurrent use; Fill calls are serialized.
// Close releases the worker goroutines.
type Aligner struct {
	opts   Options
	pool   *schedule.Pool
	mu     sync.Mutex
	chunks []schedule.Range // reused partition buffer
}

// NewAligner validates the options and starts the worker pool.
//
// Errors:
//   - ErrBadScoring when the scoring scheme violates its sign constraints.
func NewAligner(opts ...Option) (*Aligner, error) {
	o := gatherOptions(opts...)
	if err := o.scoring.Validate(); err != nil {
		return nil, err
	}
	pool, err := schedule.NewPool(o.workers)
	if err != nil {
		return nil, err
	}

	return &Aligner{opts: o, pool: pool}, nil
}

// Close stops the worker pool. Fill and Align fail afterwards.
func (a *Aligner) Close() { a.pool.Close() }

// Policy returns the configured work-distribution policy.
func (a *Aligner) Policy() schedule.Policy { return a.opts.policy }

// Workers returns the worker count.
func (a *Aligner) Workers() int { return a.opts.workers }

// Scoring returns the scoring scheme.
func (a *Aligner) Scoring() Scoring { return a.opts.scoring }

// NewGrid allocates a grid sized for sequences of lengths n and m under this
// aligner's cell limit and invariant-check setting.
func (a *Aligner) NewGrid(n, m int) (*Grid, error) {
	return newGrid(n, m, a.opts.maxCells, a.opts.checkInvariants)
}

// Align computes the local-alignment score of x and y on a fresh grid.
// On error no result is returned.
//
// Errors:
//   - ErrEmptySequence before any allocation.
//   - ErrScoreOverflow before any allocation when Match*min(n,m) exceeds int32.
//   - ErrGridTooLarge / ErrAllocation when the grid cannot be allocated.
//   - ctx.Err() (wrapped) when cancelled between diagonals.
//   - ErrPartitionMismatch / ErrUnresolvedRead with invariant checks enabled.
func (a *Aligner) Align(ctx context.Context, x, y []byte) (*Result, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmptySequence
	}
	if err := a.opts.scoring.CheckBound(len(x), len(y)); err != nil {
		return nil, err
	}
	g, err := a.NewGrid(len(x), len(y))
	if err != nil {
		return nil, err
	}
	st, err := a.Fill(ctx, g, x, y)
	if err != nil {
		return nil, err
	}

	return newResult(g, st, a.opts.policy, a.opts.workers), nil
}

// Fill resets g and computes every interior cell in wavefront order.
//
// Implementation:
//   - Stage 1: validate inputs and the score bound; reset g.
//   - Stage 2: for k = 2..n+m: bound the diagonal, partition it with the
//     policy, run the chunks on the pool. Pool.Run returns only after every
//     cell of diagonal k is committed, so diagonal k+1 reads settled values.
//   - Stage 3: report fill time, cell, diagonal and chunk counts.
//
// The contents of g are unspecified when Fill returns an error.
func (a *Aligner) Fill(ctx context.Context, g *Grid, x, y []byte) (Stats, error) {
	if g == nil {
		return Stats{}, ErrNilGrid
	}
	if len(x) == 0 || len(y) == 0 {
		return Stats{}, ErrEmptySequence
	}
	n, m := len(x), len(y)
	if g.n != n || g.m != m {
		return Stats{}, fmt.Errorf("%w: grid %d×%d, sequences %d and %d", ErrShapeMismatch, g.Rows(), g.Cols(), n, m)
	}
	if err := a.opts.scoring.CheckBound(n, m); err != nil {
		return Stats{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	g.Reset()
	f := &filler{g: g, x: x, y: y, s: a.opts.scoring}
	body := f.fillRange
	policy, workers := a.opts.policy, a.opts.workers

	var st Stats
	start := time.Now()
	for k := 2; k <= n+m; k++ {
		if err := ctx.Err(); err != nil {
			return Stats{}, fmt.Errorf("smithwaterman: diagonal %d: %w", k, err)
		}
		r, ok := DiagonalBounds(k, n, m)
		if !ok {
			continue
		}
		a.chunks = policy.Partition(a.chunks, r, workers)
		if a.opts.checkInvariants {
			if err := schedule.CheckPartition(a.chunks, r); err != nil {
				return Stats{}, fmt.Errorf("%w: diagonal %d: %w", ErrPartitionMismatch, k, err)
			}
		}
		f.k = k
		if err := a.pool.Run(a.chunks, policy.Mode(), body); err != nil {
			return Stats{}, err
		}
		if f.err != nil {
			return Stats{}, f.err
		}
		st.Diagonals++
		st.Chunks += int64(len(a.chunks))
	}
	st.Fill = time.Since(start)
	st.Cells = int64(n) * int64(m)

	return st, nil
}

// Align is a one-shot helper: it builds an Aligner from opts, aligns x and y
// and releases the workers.
func Align(ctx context.Context, x, y []byte, opts ...Option) (*Result, error) {
	a, err := NewAligner(opts...)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	return a.Align(ctx, x, y)
}

// filler carries the per-run state shared by all chunks of a diagonal.
// k is written by the driving goroutine between phases only.
type filler struct {
	g    *Grid
	x, y []byte
	s    Scoring
	k    int

	once sync.Once
	err  error
}

// fillRange computes rows r.Lo..r.Hi-1 of diagonal f.k.
func (f *filler) fillRange(r schedule.Range) {
	if f.g.resolved != nil {
		f.fillChecked(r)
		return
	}
	data, stride, k := f.g.data, f.g.stride, f.k
	for i := r.Lo; i < r.Hi; i++ {
		j := k - i
		idx := i*stride + j
		data[idx] = Cell(data[idx-stride-1], data[idx-stride], data[idx-1], f.x[i-1], f.y[j-1], f.s)
	}
}

// fillChecked is fillRange with every predecessor verified as committed.
func (f *filler) fillChecked(r schedule.Range) {
	data, resolved, stride, k := f.g.data, f.g.resolved, f.g.stride, f.k
	for i := r.Lo; i < r.Hi; i++ {
		j := k - i
		idx := i*stride + j
		for _, p := range [3]int{idx - stride - 1, idx - stride, idx - 1} {
			if !resolved[p] {
				f.fail(fmt.Errorf("%w: (%d,%d) needed by (%d,%d) on diagonal %d",
					ErrUnresolvedRead, p/stride, p%stride, i, j, k))
				return
			}
		}
		data[idx] = Cell(data[idx-stride-1], data[idx-stride], data[idx-1], f.x[i-1], f.y[j-1], f.s)
		resolved[idx] = true
	}
}

func (f *filler) fail(err error) {
	f.once.Do(func() { f.err = err })
}
