// SPDX-License-Identifier: MIT

// Package wavealign computes Smith-Waterman local-alignment scores by
// filling the score grid one anti-diagonal at a time, with the cells of each
// diagonal spread over a pool of workers.
//
// Every cell H[i][j] depends only on its upper, left and upper-left
// neighbours, all of which lie on earlier anti-diagonals (i+j smaller). All
// cells of one diagonal are therefore independent, and a barrier between
// diagonals is the only synchronization the fill needs.
//
// Layout:
//
//	schedule/      Range, the Policy interface (static, dynamic, guided)
//	               and the persistent worker Pool with its per-phase barrier
//	smithwaterman/ Grid, Scoring, the recurrence, the wavefront Aligner
//	               and an independent row-major reference fill
//	sequence/      DNA alphabet, seeded generator, plain/FASTA reader
//	bench/         YAML-configured sweep over policies and worker counts,
//	               serial verification, prometheus metrics, result table
//	cmd/swbench/   the command-line front end (run, score, verify)
//
// Quick start:
//
//	res, err := smithwaterman.Align(ctx, []byte("GATTACA"), []byte("GCATGCU"),
//		smithwaterman.WithPolicy(schedule.Dynamic{Chunk: 64}),
//		smithwaterman.WithWorkers(4))
//	// res.Score == 7
//
// The result is identical for every policy and worker count; only the wall
// time differs.
package wavealign
