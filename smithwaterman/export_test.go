// SPDX-License-Identifier: MIT

package smithwaterman

import "github.com/katalvlaran/wavealign/schedule"

// FillDiagonalForTest computes rows r of diagonal k directly, bypassing the
// diagonal loop and its barrier. Used to provoke out-of-order reads.
func FillDiagonalForTest(g *Grid, x, y []byte, s Scoring, k int, r schedule.Range) error {
	f := &filler{g: g, x: x, y: y, s: s, k: k}
	f.fillRange(r)

	return f.err
}

// NewTrackedGridForTest allocates a grid with the resolved-cell bitmap enabled.
func NewTrackedGridForTest(n, m int) (*Grid, error) {
	return newGrid(n, m, DefaultMaxCells, true)
}

// AllocForTest exposes the recovering allocator.
func AllocForTest(cells int) ([]int32, error) {
	return alloc[int32](cells)
}
