// Package smithwaterman computes the optimal local-alignment (Smith-Waterman)
// score of two symbol sequences with a parallel wavefront fill.
//
// What:
//
//	H is an (n+1)×(m+1) matrix with zero boundaries and
//
//	  H(i,j) = max(0, H(i-1,j-1) + sub(A[i-1],B[j-1]), H(i-1,j) + gap, H(i,j-1) + gap)
//
//	The score is the maximum of H. Every interior cell depends on three
//	cells of the two previous anti-diagonals (k = i+j), so all cells of one
//	anti-diagonal are independent and can be computed in parallel.
//
// How:
//
//   - Grid owns H as a flat row-major int32 buffer (boundaries fixed at 0).
//   - Cell is the pure recurrence for one cell.
//   - Aligner walks k = 2..n+m in order. For each diagonal it asks a
//     schedule.Policy for chunks of the valid row range and runs them on a
//     schedule.Pool; Pool.Run is the barrier between diagonals.
//   - The policy only decides who computes which cells, never what is
//     computed, so every policy and worker count yields a bit-identical grid.
//
// Policies (package schedule):
//
//   - Block   ("static")  one contiguous chunk per worker.
//   - Dynamic ("dynamic") fixed chunks (default 64) pulled from a shared cursor.
//   - Guided  ("guided")  chunks of ceil(remaining/workers), shrinking.
//
// Usage:
//
//	res, err := smithwaterman.Align(ctx, a, b,
//	    smithwaterman.WithPolicy(schedule.Dynamic{Chunk: 64}),
//	    smithwaterman.WithWorkers(8),
//	)
//	fmt.Println(res.Score, res.MCUPS())
//
// Debugging:
//
//	WithInvariantChecks(true) verifies every chunk list against its diagonal
//	and every predecessor read against a resolved-cell bitmap
//	(ErrPartitionMismatch, ErrUnresolvedRead).
//
// Complexity:
//
//   - Time:   O(n·m) cell updates, n+m-1 barriers.
//   - Memory: O(n·m) (plus n·m bytes with invariant checks).
//
// Traceback (reconstructing the alignment itself) is not provided.
package smithwaterman
