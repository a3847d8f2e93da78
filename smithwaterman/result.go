// SPDX-License-Identifier: MIT

package smithwaterman

import (
	"time"

	"github.com/katalvlaran/wavealign/schedule"
)

// Stats describes one fill of the score grid.
type Stats struct {
	// Fill is the wall time of the wavefront loop (allocation and the final
	// maximum scan excluded).
	Fill time.Duration

	// Cells is the number of interior cells computed, n·m.
	Cells int64

	// Diagonals is the number of anti-diagonals processed, n+m-1.
	Diagonals int

	// Chunks is the total number of chunks dispatched over all diagonals;
	// a proxy for the coordination cost of the policy.
	Chunks int64
}

// CellsPerSecond returns Cells / Fill in seconds, or 0 for a zero duration.
func (s Stats) CellsPerSecond() float64 {
	if s.Fill <= 0 {
		return 0
	}

	return float64(s.Cells) / s.Fill.Seconds()
}

// MCUPS returns millions of cell updates per second.
func (s Stats) MCUPS() float64 { return s.CellsPerSecond() / 1e6 }

// Result is the outcome of a successful Align.
type Result struct {
	// Score is the optimal local-alignment score, the maximum of H.
	Score int32

	// Row and Col locate the first (row-major) cell holding Score.
	Row, Col int

	// Grid is the fully populated score matrix.
	Grid *Grid

	// Policy and Workers echo the configuration that produced the result.
	Policy  string
	Workers int

	Stats
}

func newResult(g *Grid, st Stats, p schedule.Policy, workers int) *Result {
	v, i, j := g.Max()

	return &Result{
		Score:   v,
		Row:     i,
		Col:     j,
		Grid:    g,
		Policy:  p.Name(),
		Workers: workers,
		Stats:   st,
	}
}
