// SPDX-License-Identifier: MIT

// Package schedule - partitioning policies.
//
// A Policy is a pure configuration value: given the same Range and worker
// count it always yields the same chunk list. Only the assignment of chunks
// to workers (Mode) is left to run time.

package schedule

import (
	"fmt"
	"strings"
)

// Defaults (single source of truth).
const (
	// DefaultDynamicChunk is the chunk size used by Dynamic when Chunk <= 0.
	DefaultDynamicChunk = 64

	// DefaultGuidedMinChunk is the smallest chunk Guided emits when MinChunk <= 0.
	DefaultGuidedMinChunk = 1
)

// Policy names accepted by ParsePolicy and reported by Name.
const (
	NameBlock   = "static"
	NameDynamic = "dynamic"
	NameGuided  = "guided"
)

// Policy partitions a Range into an ordered list of chunks.
//
// Contract:
//   - Partition appends to dst[:0] and returns the result, so callers can
//     reuse one buffer across phases without allocating.
//   - The returned chunks are non-empty, ascending and tile r exactly.
//   - An empty r yields an empty list.
type Policy interface {
	// Name is the short policy name ("static", "dynamic", "guided").
	Name() string

	// Mode tells the Pool how the chunks are handed to workers.
	Mode() Mode

	// Partition splits r for the given number of workers.
	Partition(dst []Range, r Range, workers int) []Range
}

// Compile-time conformance.
var (
	_ Policy = Block{}
	_ Policy = Dynamic{}
	_ Policy = Guided{}
)

// Block splits a range into at most `workers` contiguous chunks whose sizes
// differ by at most one, assigned once per phase. Lowest coordination cost;
// balanced whenever per-item cost is uniform.
type Block struct{}

// Name implements Policy.
func (Block) Name() string { return NameBlock }

// Mode implements Policy.
func (Block) Mode() Mode { return Static }

// Partition implements Policy.
// The first len%workers chunks carry one extra item.
func (Block) Partition(dst []Range, r Range, workers int) []Range {
	dst = dst[:0]
	n := r.Len()
	if n == 0 {
		return dst
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	base, extra := n/workers, n%workers
	lo := r.Lo
	for w := 0; w < workers; w++ {
		size := base
		if w < extra {
			size++
		}
		dst = append(dst, Range{Lo: lo, Hi: lo + size})
		lo += size
	}

	return dst
}

// String implements fmt.Stringer.
func (Block) String() string { return NameBlock }

// Dynamic cuts a range into fixed-size chunks that workers pull from a shared
// cursor until the range is exhausted. The last chunk may be shorter.
type Dynamic struct {
	// Chunk is the number of items per chunk; <= 0 means DefaultDynamicChunk.
	Chunk int
}

// Name implements Policy.
func (Dynamic) Name() string { return NameDynamic }

// Mode implements Policy.
func (Dynamic) Mode() Mode { return Pull }

// Partition implements Policy. The worker count does not influence the cut.
func (d Dynamic) Partition(dst []Range, r Range, _ int) []Range {
	dst = dst[:0]
	chunk := d.size()
	for lo := r.Lo; lo < r.Hi; lo += chunk {
		dst = append(dst, Range{Lo: lo, Hi: min(lo+chunk, r.Hi)})
	}

	return dst
}

func (d Dynamic) size() int {
	if d.Chunk <= 0 {
		return DefaultDynamicChunk
	}

	return d.Chunk
}

// String implements fmt.Stringer.
func (d Dynamic) String() string { return fmt.Sprintf("%s(%d)", NameDynamic, d.size()) }

// Guided emits large chunks first and shrinks them as the range is consumed:
// each chunk takes ceil(remaining/workers) items, never fewer than MinChunk
// (except for the final remainder). Workers pull chunks from a shared cursor.
type Guided struct {
	// MinChunk bounds the chunk size from below; <= 0 means DefaultGuidedMinChunk.
	MinChunk int
}

// Name implements Policy.
func (Guided) Name() string { return NameGuided }

// Mode implements Policy.
func (Guided) Mode() Mode { return Pull }

// Partition implements Policy.
// Chunk sizes are non-increasing along the returned list.
func (g Guided) Partition(dst []Range, r Range, workers int) []Range {
	dst = dst[:0]
	if workers < 1 {
		workers = 1
	}
	floor := g.floor()
	for lo := r.Lo; lo < r.Hi; {
		remaining := r.Hi - lo
		size := (remaining + workers - 1) / workers
		if size < floor {
			size = floor
		}
		if size > remaining {
			size = remaining
		}
		dst = append(dst, Range{Lo: lo, Hi: lo + size})
		lo += size
	}

	return dst
}

func (g Guided) floor() int {
	if g.MinChunk <= 0 {
		return DefaultGuidedMinChunk
	}

	return g.MinChunk
}

// String implements fmt.Stringer.
func (g Guided) String() string { return fmt.Sprintf("%s(%d)", NameGuided, g.floor()) }

// ParsePolicy maps a policy name to its Policy value.
// chunk is the Dynamic chunk size or the Guided minimum chunk; <= 0 selects
// the default. Names are case-insensitive; "block"/"contiguous" alias static,
// "chunk" aliases dynamic and "adaptive" aliases guided.
func ParsePolicy(name string, chunk int) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameBlock, "block", "contiguous":
		return Block{}, nil
	case NameDynamic, "chunk":
		return Dynamic{Chunk: chunk}, nil
	case NameGuided, "adaptive":
		return Guided{MinChunk: chunk}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Policies returns one instance of every built-in policy with default settings,
// in the order static, dynamic, guided.
func Policies() []Policy {
	return []Policy{Block{}, Dynamic{}, Guided{}}
}

// CheckPartition verifies that chunks are non-empty, ascending and tile r
// exactly. It is meant for debug builds and tests of custom policies.
func CheckPartition(chunks []Range, r Range) error {
	if r.Empty() {
		if len(chunks) != 0 {
			return fmt.Errorf("%w: %d chunks for empty range %v", ErrBadPartition, len(chunks), r)
		}

		return nil
	}
	next := r.Lo
	for idx, c := range chunks {
		if c.Empty() {
			return fmt.Errorf("%w: chunk %d %v is empty", ErrBadPartition, idx, c)
		}
		if c.Lo != next {
			return fmt.Errorf("%w: chunk %d %v starts at %d, want %d", ErrBadPartition, idx, c, c.Lo, next)
		}
		next = c.Hi
	}
	if next != r.Hi {
		return fmt.Errorf("%w: chunks end at %d, range %v", ErrBadPartition, next, r)
	}

	return nil
}
