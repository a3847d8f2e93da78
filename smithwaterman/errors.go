// SPDX-License-Identifier: MIT
// Package smithwaterman: sentinel error set.
// Every message is prefixed with "smithwaterman: ..."; callers match with
// errors.Is. Context (coordinates, diagonal index) is attached with %w.
//
// Taxonomy:
//   - invalid input:        ErrEmptySequence, ErrBadShape, ErrShapeMismatch, ErrBadScoring, ErrScoreOverflow, ErrNilGrid
//   - allocation failure:   ErrGridTooLarge, ErrAllocation
//   - store contract:       ErrOutOfRange, ErrBoundaryWrite, ErrNegativeScore
//   - internal invariants:  ErrUnresolvedRead, ErrPartitionMismatch (only with WithInvariantChecks)

package smithwaterman

import "errors"

var (
	// ErrEmptySequence is returned before any allocation when either input is empty.
	ErrEmptySequence = errors.New("smithwaterman: sequences must be non-empty")

	// ErrBadShape indicates non-positive sequence lengths passed to NewGrid.
	ErrBadShape = errors.New("smithwaterman: grid dimensions must be >= 1")

	// ErrShapeMismatch indicates a grid whose shape does not match the sequences.
	ErrShapeMismatch = errors.New("smithwaterman: grid shape does not match sequences")

	// ErrNilGrid indicates a nil *Grid argument.
	ErrNilGrid = errors.New("smithwaterman: nil grid")

	// ErrBadScoring indicates a scoring scheme outside Match > 0, Mismatch <= 0, Gap <= 0.
	ErrBadScoring = errors.New("smithwaterman: invalid scoring scheme")

	// ErrScoreOverflow indicates a scoring scheme whose best possible score,
	// Match*min(n,m), does not fit in int32.
	ErrScoreOverflow = errors.New("smithwaterman: maximum score overflows int32")

	// ErrGridTooLarge indicates (n+1)*(m+1) overflows int or exceeds the cell limit.
	ErrGridTooLarge = errors.New("smithwaterman: score grid exceeds cell limit")

	// ErrAllocation indicates the runtime refused to allocate the score grid.
	ErrAllocation = errors.New("smithwaterman: score grid allocation failed")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("smithwaterman: cell index out of range")

	// ErrBoundaryWrite indicates an attempt to overwrite row 0 or column 0.
	ErrBoundaryWrite = errors.New("smithwaterman: boundary cells are fixed at zero")

	// ErrNegativeScore indicates a negative value written into the grid.
	ErrNegativeScore = errors.New("smithwaterman: local-alignment scores are never negative")

	// ErrUnresolvedRead indicates a cell was computed from a predecessor that
	// had not been written yet (missing or misordered barrier).
	ErrUnresolvedRead = errors.New("smithwaterman: read of unresolved cell")

	// ErrPartitionMismatch indicates a policy produced chunks that do not tile
	// the diagonal exactly once.
	ErrPartitionMismatch = errors.New("smithwaterman: partition does not cover diagonal")
)
