// SPDX-License-Identifier: MIT

package sequence

import "errors"

var (
	// ErrBadLength indicates a requested sequence length below one.
	ErrBadLength = errors.New("sequence: length must be >= 1")

	// ErrEmptyAlphabet indicates an alphabet without symbols.
	ErrEmptyAlphabet = errors.New("sequence: alphabet is empty")

	// ErrBadSymbol indicates a symbol outside the alphabet.
	ErrBadSymbol = errors.New("sequence: symbol not in alphabet")

	// ErrEmptyInput indicates that a reader produced no symbols.
	ErrEmptyInput = errors.New("sequence: input holds no symbols")
)
