// SPDX-License-Identifier: MIT

// Package bench is the driver around the wavefront aligner: it generates a
// sequence pair, runs the fill once per (policy, worker count, repeat),
// measures wall time and throughput, optionally checks every trial against a
// serial reference, and renders the results as a table.
//
// Configuration comes from DefaultConfig, optionally overlaid with a YAML
// file (LoadConfig). Progress is logged with zap; trial metrics are exported
// through a prometheus registry supplied by the caller.
//
// Speedups are reported, never asserted: for small grids coordination costs
// can exceed the parallel gain.
package bench
