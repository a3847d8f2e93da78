// SPDX-License-Identifier: MIT

// Package schedule splits a batch of independent work items across a fixed
// pool of workers and runs the batch behind a full barrier.
//
// What:
//
//   - Range is a half-open index interval [Lo, Hi) describing one batch.
//   - Policy turns a Range into an ordered list of chunks:
//     Block (contiguous, one chunk per worker), Dynamic (fixed small chunks)
//     and Guided (chunks shrinking with the remaining work).
//   - Pool owns workers-1 long-lived goroutines; the caller of Run acts as
//     worker 0. Run returns only after every chunk of the batch has been
//     processed, so consecutive Run calls form a sequence of phases.
//
// Why:
//
//   - Wavefront kernels (anti-diagonal dynamic programming, stencils) need
//     many short parallel phases separated by barriers. Spawning goroutines
//     per phase costs more than the work in short phases.
//   - Keeping the partitioning policy separate from the kernel makes the
//     numeric result independent of the policy by construction.
//
// Memory ordering:
//
//	Everything written by the caller before Run is visible to every worker
//	while the phase runs (channel send), and everything written by workers is
//	visible to the caller once Run returns (WaitGroup.Wait). A later Run
//	therefore observes all writes of the earlier one.
//
// Complexity:
//
//   - Block.Partition:   O(workers)
//   - Dynamic.Partition: O(len/chunk)
//   - Guided.Partition:  O(workers·log(len/workers)) chunks
//   - Pool.Run:          O(chunks) dispatch plus the body cost
//
// Errors:
//
//   - ErrBadWorkers:    worker count < 1.
//   - ErrPoolClosed:    Run after Close.
//   - ErrNilBody:       Run without a body.
//   - ErrUnknownPolicy: ParsePolicy got an unrecognized name.
//   - ErrBadPartition:  CheckPartition found a gap, overlap or empty chunk.
package schedule
