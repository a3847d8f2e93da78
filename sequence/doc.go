// SPDX-License-Identifier: MIT

// Package sequence provides the symbol sequences consumed by the aligners:
// a small fixed alphabet, a seeded uniform generator and a reader for plain
// or FASTA text.
//
// Sequences are plain byte slices so they can be handed to any routine that
// accepts []byte without conversion. Treat them as immutable once built.
//
// Generation is deterministic per seed (math/rand with an explicit source);
// seed 0 selects a fixed default seed, never the clock.
package sequence
