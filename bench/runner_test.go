// SPDX-License-Identifier: MIT

package bench_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wavealign/bench"
	"github.com/katalvlaran/wavealign/schedule"
	"github.com/katalvlaran/wavealign/sequence"
	sw "github.com/katalvlaran/wavealign/smithwaterman"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// smallConfig is a sweep small enough for unit tests.
func smallConfig() bench.Config {
	cfg := bench.DefaultConfig()
	cfg.LengthA, cfg.LengthB = 40, 27
	cfg.Seed = 11
	cfg.Threads = []int{1, 3}
	cfg.Repeats = 2
	cfg.Verify = true
	cfg.CheckInvariants = true

	return cfg
}

// TestRunner_Run checks trial count, verified scores, speedups and logs.
func TestRunner_Run(t *testing.T) {
	cfg := smallConfig()
	core, logs := observer.New(zap.InfoLevel)
	reg := prometheus.NewRegistry()
	metrics, err := bench.NewMetrics(reg)
	require.NoError(t, err)

	r, err := bench.NewRunner(cfg, zap.New(core), metrics)
	require.NoError(t, err)
	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 40, rep.LengthA)
	assert.Equal(t, 27, rep.LengthB)
	assert.True(t, rep.Verified)
	require.Len(t, rep.Trials, 3*2*2)

	gen, err := sequence.NewGenerator(cfg.Seed, sequence.DNA)
	require.NoError(t, err)
	a, b, err := gen.Pair(cfg.LengthA, cfg.LengthB)
	require.NoError(t, err)
	want, err := sw.ScoreSerial(a, b, cfg.Scoring)
	require.NoError(t, err)
	assert.Equal(t, want, rep.Reference)

	for _, tr := range rep.Trials {
		assert.Equal(t, want, tr.Score, "%s/%d", tr.Variant, tr.Workers)
		assert.True(t, tr.Verified)
		assert.Equal(t, int64(40*27), tr.Cells)
		assert.Positive(t, tr.Speedup, "every variant has a single-worker baseline")
		if tr.Workers == 1 {
			assert.LessOrEqual(t, tr.Speedup, 1.0, "baseline is the fastest single-worker fill")
		}
	}

	assert.Equal(t, 12, logs.FilterMessage("trial").Len())
	assert.Equal(t, 1, logs.FilterMessage("sweep finished").Len())

	n, err := testutil.GatherAndCount(reg, "wavealign_trials_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "one series per policy variant")
	n, err = testutil.GatherAndCount(reg, "wavealign_fill_seconds")
	require.NoError(t, err)
	assert.Equal(t, 6, n, "one series per policy and worker count")
}

// TestRunner_NilCollaborators runs without logger or metrics.
func TestRunner_NilCollaborators(t *testing.T) {
	cfg := smallConfig()
	cfg.Policies = []bench.PolicyConfig{{Name: "guided", Chunk: 4}}
	cfg.Threads = []int{2}
	cfg.Repeats = 1
	cfg.Verify = false

	r, err := bench.NewRunner(cfg, nil, nil)
	require.NoError(t, err)
	rep, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Trials, 1)
	assert.False(t, rep.Verified)
	assert.False(t, rep.Trials[0].Verified)
	assert.Zero(t, rep.Trials[0].Speedup, "no single-worker baseline")
	assert.Equal(t, "guided(4)", rep.Trials[0].Variant)
	assert.Equal(t, schedule.NameGuided, rep.Trials[0].Policy)
}

// TestRunner_Errors covers bad configs and cancellation.
func TestRunner_Errors(t *testing.T) {
	cfg := smallConfig()
	cfg.Repeats = 0
	_, err := bench.NewRunner(cfg, nil, nil)
	assert.ErrorIs(t, err, bench.ErrBadConfig)

	r, err := bench.NewRunner(smallConfig(), nil, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestNewMetrics_DuplicateRegistration surfaces registry conflicts.
func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := bench.NewMetrics(reg)
	require.NoError(t, err)
	_, err = bench.NewMetrics(reg)
	assert.Error(t, err)
}

// TestRunner_MetricsByVariant keeps two variants of one policy apart.
func TestRunner_MetricsByVariant(t *testing.T) {
	cfg := smallConfig()
	cfg.Policies = []bench.PolicyConfig{{Name: "dynamic", Chunk: 4}, {Name: "dynamic", Chunk: 16}}
	cfg.Threads = []int{2}
	cfg.Repeats = 1
	reg := prometheus.NewRegistry()
	metrics, err := bench.NewMetrics(reg)
	require.NoError(t, err)

	r, err := bench.NewRunner(cfg, nil, metrics)
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	require.NoError(t, err)

	for _, name := range []string{"wavealign_trials_total", "wavealign_mcups", "wavealign_chunks"} {
		n, err := testutil.GatherAndCount(reg, name)
		require.NoError(t, err)
		assert.Equal(t, 2, n, name)
	}
	const want = `
# HELP wavealign_chunks Chunks dispatched over all diagonals in the last trial
# TYPE wavealign_chunks gauge
wavealign_chunks{policy="dynamic(16)",workers="2"} 100
wavealign_chunks{policy="dynamic(4)",workers="2"} 294
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "wavealign_chunks"))
}

// TestRunner_MaxCells applies the configured limit to every grid.
func TestRunner_MaxCells(t *testing.T) {
	cfg := smallConfig()
	cfg.MaxCells = 41*28 - 1
	r, err := bench.NewRunner(cfg, nil, nil)
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	assert.ErrorIs(t, err, sw.ErrGridTooLarge)

	cfg.MaxCells = 41 * 28
	r, err = bench.NewRunner(cfg, nil, nil)
	require.NoError(t, err)
	_, err = r.Run(context.Background())
	assert.NoError(t, err)
}
