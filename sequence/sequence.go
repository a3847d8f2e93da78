// SPDX-License-Identifier: MIT

package sequence

import (
	"fmt"
	"strings"
)

// Alphabet is the ordered set of allowed symbols.
type Alphabet string

// DNA is the four-base nucleotide alphabet.
const DNA Alphabet = "ACGT"

// Contains reports whether b belongs to the alphabet.
func (a Alphabet) Contains(b byte) bool {
	return strings.IndexByte(string(a), b) >= 0
}

// Len returns the number of symbols.
func (a Alphabet) Len() int { return len(a) }

// Sequence is an ordered run of symbols.
type Sequence []byte

// New builds a Sequence from s after upper-casing it and checking every
// symbol against alpha. An empty alpha accepts any symbol.
func New(s string, alpha Alphabet) (Sequence, error) {
	seq := Sequence(strings.ToUpper(s))
	if err := seq.Validate(alpha); err != nil {
		return nil, err
	}

	return seq, nil
}

// Validate checks that every symbol of s belongs to alpha.
// An empty alpha accepts any symbol.
func (s Sequence) Validate(alpha Alphabet) error {
	if alpha == "" {
		return nil
	}
	for i, b := range s {
		if !alpha.Contains(b) {
			return fmt.Errorf("%w: %q at position %d", ErrBadSymbol, b, i)
		}
	}

	return nil
}

// String implements fmt.Stringer.
func (s Sequence) String() string { return string(s) }

// GCContent returns the fraction of G and C symbols (case-insensitive);
// 0 for an empty sequence.
func (s Sequence) GCContent() float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for _, b := range s {
		switch b {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}

	return float64(gc) / float64(len(s))
}
