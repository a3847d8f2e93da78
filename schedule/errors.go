// SPDX-License-Identifier: MIT

package schedule

import "errors"

var (
	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("schedule: worker count must be >= 1")

	// ErrPoolClosed is returned by Run once Close has been called.
	ErrPoolClosed = errors.New("schedule: pool is closed")

	// ErrNilBody indicates Run was called without a chunk body.
	ErrNilBody = errors.New("schedule: nil chunk body")

	// ErrUnknownPolicy indicates ParsePolicy did not recognize the policy name.
	ErrUnknownPolicy = errors.New("schedule: unknown policy")

	// ErrBadPartition indicates that a chunk list does not tile its range
	// exactly once, in ascending order, with non-empty chunks.
	ErrBadPartition = errors.New("schedule: partition does not tile range")
)
