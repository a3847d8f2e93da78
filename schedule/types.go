// SPDX-License-Identifier: MIT

package schedule

import "fmt"

// Range is the half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in r (0 when Hi <= Lo).
func (r Range) Len() int {
	if r.Hi <= r.Lo {
		return 0
	}

	return r.Hi - r.Lo
}

// Empty reports whether r holds no index.
func (r Range) Empty() bool { return r.Hi <= r.Lo }

// String implements fmt.Stringer.
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi) }

// Mode selects how a Pool hands the chunks of one phase to its workers.
type Mode int

const (
	// Static assigns chunk c to worker c mod active, fixed before the phase starts.
	Static Mode = iota

	// Pull lets workers claim the next unprocessed chunk from a shared atomic cursor.
	Pull
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Static:
		return "static"
	case Pull:
		return "pull"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
