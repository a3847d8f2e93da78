// SPDX-License-Identifier: MIT

package smithwaterman

import (
	"fmt"
	"math"
)

// Scoring is the linear-gap scoring scheme.
//   - Match    > 0: added on equal symbols.
//   - Mismatch <= 0: added on different symbols.
//   - Gap      <= 0: added for an insertion or deletion.
type Scoring struct {
	Match    int32 `yaml:"match"`
	Mismatch int32 `yaml:"mismatch"`
	Gap      int32 `yaml:"gap"`
}

// DefaultScoring returns {Match: 3, Mismatch: -3, Gap: -2}.
func DefaultScoring() Scoring {
	return Scoring{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap}
}

// Validate checks the sign constraints.
func (s Scoring) Validate() error {
	if s.Match <= 0 || s.Mismatch > 0 || s.Gap > 0 {
		return fmt.Errorf("%w: match=%d mismatch=%d gap=%d", ErrBadScoring, s.Match, s.Mismatch, s.Gap)
	}

	return nil
}

// CheckBound reports ErrScoreOverflow when sequences of lengths n and m
// could reach a score above math.MaxInt32. Every cell is bounded by
// Match*min(n,m); Mismatch and Gap are only added to non-negative cells.
func (s Scoring) CheckBound(n, m int) error {
	if int64(s.Match)*int64(min(n, m)) > math.MaxInt32 {
		return fmt.Errorf("%w: match=%d over %d cells", ErrScoreOverflow, s.Match, min(n, m))
	}

	return nil
}

// Substitution returns Match when a == b and Mismatch otherwise.
func (s Scoring) Substitution(a, b byte) int32 {
	if a == b {
		return s.Match
	}

	return s.Mismatch
}

// Cell computes H(i,j) from its three resolved predecessors
// diag = H(i-1,j-1), up = H(i-1,j), left = H(i,j-1) and the symbol pair
// (A[i-1], B[j-1]):
//
//	H(i,j) = max(0, diag + sub(a,b), up + gap, left + gap)
//
// Ties between the candidates are irrelevant: only the value is stored.
func Cell(diag, up, left int32, a, b byte, s Scoring) int32 {
	best := diag + s.Substitution(a, b)
	if v := up + s.Gap; v > best {
		best = v
	}
	if v := left + s.Gap; v > best {
		best = v
	}
	if best < 0 {
		return 0
	}

	return best
}
