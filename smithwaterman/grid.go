// SPDX-License-Identifier: MIT

// Package smithwaterman - score grid storage (row-major) & safe accessors.
//
// Purpose:
//   - Own the (n+1)×(m+1) score matrix H as one flat int32 buffer with the
//     explicit offset formula i*(m+1) + j.
//   - Keep row 0 and column 0 at zero for the lifetime of the grid.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking. The wavefront uses unchecked offsets internally.
//
// Complexity quicksheet:
//   - NewGrid: O(n·m) zero-init; At/Set: O(1); Reset/Max/Equal: O(n·m).

package smithwaterman

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// gridErrorf wraps a sentinel with the accessor name and coordinates,
// e.g. "Grid.At(3,9): smithwaterman: cell index out of range".
func gridErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, i, j, err)
}

// Grid is the local-alignment score matrix for sequences of lengths n and m.
//   - data holds (n+1)*(m+1) cells in row-major order.
//   - resolved is non-nil only when invariant checks are enabled; it marks
//     cells whose value has been committed (boundaries start resolved).
type Grid struct {
	n, m     int
	stride   int // m+1
	data     []int32
	resolved []bool
}

// NewGrid allocates the score grid for sequences of lengths n and m.
//
// Implementation:
//   - Stage 1: validate n >= 1 and m >= 1.
//   - Stage 2: compute (n+1)*(m+1) with overflow detection.
//   - Stage 3: allocate the zeroed buffer.
//
// Errors:
//   - ErrBadShape on non-positive lengths.
//   - ErrGridTooLarge when the cell count overflows int or exceeds DefaultMaxCells.
//   - ErrAllocation when the runtime rejects the allocation size.
func NewGrid(n, m int) (*Grid, error) {
	return newGrid(n, m, DefaultMaxCells, false)
}

// NewGridWithLimit is NewGrid under a caller-chosen cell limit instead of
// DefaultMaxCells.
func NewGridWithLimit(n, m, maxCells int) (*Grid, error) {
	return newGrid(n, m, maxCells, false)
}

func newGrid(n, m, maxCells int, track bool) (*Grid, error) {
	if n < 1 || m < 1 {
		return nil, ErrBadShape
	}
	cells, err := cellCount(n, m, maxCells)
	if err != nil {
		return nil, err
	}
	data, err := alloc[int32](cells)
	if err != nil {
		return nil, err
	}
	g := &Grid{n: n, m: m, stride: m + 1, data: data}
	if track {
		if g.resolved, err = alloc[bool](cells); err != nil {
			return nil, err
		}
		g.markBoundaries()
	}

	return g, nil
}

// cellCount returns (n+1)*(m+1) or ErrGridTooLarge.
func cellCount(n, m, maxCells int) (int, error) {
	rows, cols := n+1, m+1
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%w: %d×%d overflows int", ErrGridTooLarge, rows, cols)
	}
	cells := rows * cols
	if cells > maxCells {
		return 0, fmt.Errorf("%w: %d×%d = %d cells, limit %d", ErrGridTooLarge, rows, cols, cells, maxCells)
	}

	return cells, nil
}

// alloc turns a makeslice panic into ErrAllocation. A genuine
// out-of-memory condition still aborts the process; Go cannot recover it.
func alloc[T any](cells int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()

	return make([]T, cells), nil
}

func (g *Grid) markBoundaries() {
	for j := 0; j <= g.m; j++ {
		g.resolved[j] = true
	}
	for i := 1; i <= g.n; i++ {
		g.resolved[i*g.stride] = true
	}
}

// Rows returns n+1.
func (g *Grid) Rows() int { return g.n + 1 }

// Cols returns m+1.
func (g *Grid) Cols() int { return g.m + 1 }

// Len returns the total number of cells (n+1)*(m+1).
func (g *Grid) Len() int { return len(g.data) }

// Tracking reports whether the grid records resolved cells (invariant checks).
func (g *Grid) Tracking() bool { return g.resolved != nil }

// indexOf computes the flat offset for (i, j) or returns ErrOutOfRange.
func (g *Grid) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i > g.n || j < 0 || j > g.m {
		return 0, gridErrorf(method, i, j, ErrOutOfRange)
	}

	return i*g.stride + j, nil
}

// At returns H(i, j).
//
// Errors:
//   - ErrOutOfRange when i ∉ [0,n] or j ∉ [0,m].
func (g *Grid) At(i, j int) (int32, error) {
	idx, err := g.indexOf(ctxAt, i, j)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set assigns H(i, j) = v and marks the cell resolved.
//
// Errors:
//   - ErrOutOfRange when i ∉ [0,n] or j ∉ [0,m].
//   - ErrBoundaryWrite when i == 0 or j == 0.
//   - ErrNegativeScore when v < 0.
func (g *Grid) Set(i, j int, v int32) error {
	idx, err := g.indexOf(ctxSet, i, j)
	if err != nil {
		return err
	}
	if i == 0 || j == 0 {
		return gridErrorf(ctxSet, i, j, ErrBoundaryWrite)
	}
	if v < 0 {
		return gridErrorf(ctxSet, i, j, ErrNegativeScore)
	}
	g.data[idx] = v
	if g.resolved != nil {
		g.resolved[idx] = true
	}

	return nil
}

// Reset zeroes every cell so the grid can serve another independent run.
func (g *Grid) Reset() {
	clear(g.data)
	if g.resolved != nil {
		clear(g.resolved)
		g.markBoundaries()
	}
}

// Max returns the largest value and the first (row-major) cell holding it.
// An all-zero grid yields (0, 0, 0).
func (g *Grid) Max() (v int32, i, j int) {
	best := 0
	for idx, x := range g.data {
		if x > g.data[best] {
			best = idx
		}
	}

	return g.data[best], best / g.stride, best % g.stride
}

// Corner returns H(n, m).
func (g *Grid) Corner() int32 { return g.data[len(g.data)-1] }

// Equal reports whether o has the same shape and bit-identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.n != o.n || g.m != o.m {
		return false
	}
	for idx, x := range g.data {
		if o.data[idx] != x {
			return false
		}
	}

	return true
}

// Values returns a row-by-row copy of the grid.
func (g *Grid) Values() [][]int32 {
	out := make([][]int32, g.n+1)
	for i := range out {
		out[i] = append([]int32(nil), g.data[i*g.stride:(i+1)*g.stride]...)
	}

	return out
}

// String implements fmt.Stringer; one bracketed row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i <= g.n; i++ {
		sb.WriteString("[")
		for j := 0; j <= g.m; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", g.data[i*g.stride+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
