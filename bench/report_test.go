// SPDX-License-Identifier: MIT

package bench_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavealign/bench"
)

func sampleReport() *bench.Report {
	return &bench.Report{
		LengthA: 100, LengthB: 50, Verified: true, Reference: 42,
		Trials: []bench.Trial{
			{Variant: "static", Workers: 1, Fill: 2 * time.Second, MCUPS: 0.0025, Speedup: 1, Score: 42},
			{Variant: "dynamic(64)", Workers: 4, Fill: 500 * time.Millisecond, MCUPS: 0.01, Speedup: 4, Score: 42},
			{Variant: "guided(1)", Workers: 4, Fill: time.Second, Score: 42},
		},
	}
}

// TestWriteTable compares the rendered table with testdata/golden/table.golden.
// Run with -update to regenerate.
func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.WriteTable(&buf, sampleReport()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "table", buf.Bytes())
}

// TestWriteTable_Unverified omits the reference line.
func TestWriteTable_Unverified(t *testing.T) {
	rep := sampleReport()
	rep.Verified = false
	var buf bytes.Buffer
	require.NoError(t, bench.WriteTable(&buf, rep))
	assert.NotContains(t, buf.String(), "Serial Reference Score")
	assert.Contains(t, buf.String(), "Total Matrix Cells: 5000\n\n")
}
