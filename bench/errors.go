// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrBadConfig indicates a configuration value outside its valid domain.
	ErrBadConfig = errors.New("bench: invalid configuration")

	// ErrMismatch indicates a parallel fill that differs from the serial reference.
	ErrMismatch = errors.New("bench: result differs from serial reference")
)
