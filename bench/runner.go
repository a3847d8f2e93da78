// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/wavealign/schedule"
	"github.com/katalvlaran/wavealign/sequence"
	sw "github.com/katalvlaran/wavealign/smithwaterman"
)

// Trial is one timed fill.
type Trial struct {
	Policy   string // short name: static, dynamic, guided
	Variant  string // policy with parameters, e.g. dynamic(64)
	Workers  int
	Repeat   int
	Score    int32
	Fill     time.Duration
	Cells    int64
	Chunks   int64
	MCUPS    float64
	Speedup  float64 // single-worker fill of the same variant divided by Fill; 0 when unknown
	Verified bool
}

// Report collects the trials of one sweep.
type Report struct {
	RunID     string
	LengthA   int
	LengthB   int
	GCA, GCB  float64
	Reference int32 // serial score; meaningful when Verified
	Verified  bool
	Trials    []Trial
}

// Runner executes a sweep described by a Config.
type Runner struct {
	cfg     Config
	log     *zap.Logger
	metrics *Metrics
}

// NewRunner validates cfg. A nil logger discards output; nil metrics record nothing.
func NewRunner(cfg Config, log *zap.Logger, metrics *Metrics) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{cfg: cfg, log: log, metrics: metrics}, nil
}

// Run generates the sequence pair from the configured seed and executes the sweep.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	gen, err := sequence.NewGenerator(r.cfg.Seed, sequence.Alphabet(r.cfg.Alphabet))
	if err != nil {
		return nil, err
	}
	a, b, err := gen.Pair(r.cfg.LengthA, r.cfg.LengthB)
	if err != nil {
		return nil, err
	}

	return r.RunPair(ctx, a, b)
}

// RunPair executes the sweep on a given sequence pair.
//
// Implementation:
//   - Stage 1: optional serial reference fill (Config.Verify).
//   - Stage 2: for each policy and worker count, one Aligner and one grid;
//     Repeats fills on that grid (Fill resets it each time).
//   - Stage 3: speedups relative to the single-worker trials.
func (r *Runner) RunPair(ctx context.Context, a, b sequence.Sequence) (*Report, error) {
	policies, err := r.cfg.ParsePolicies()
	if err != nil {
		return nil, err
	}
	rep := &Report{
		RunID:   uuid.NewString(),
		LengthA: len(a),
		LengthB: len(b),
		GCA:     a.GCContent(),
		GCB:     b.GCContent(),
	}
	log := r.log.With(zap.String("run_id", rep.RunID))
	log.Info("sweep starting",
		zap.Int("length_a", rep.LengthA),
		zap.Int("length_b", rep.LengthB),
		zap.Float64("gc_a", rep.GCA),
		zap.Float64("gc_b", rep.GCB),
		zap.Int64("cells", int64(len(a))*int64(len(b))),
		zap.Ints("threads", r.cfg.Threads),
		zap.Int("repeats", r.cfg.Repeats),
	)

	var ref *sw.Grid
	if r.cfg.Verify {
		if ref, err = r.reference(a, b); err != nil {
			return nil, err
		}
		rep.Reference, _, _ = ref.Max()
		rep.Verified = true
		log.Info("serial reference ready", zap.Int32("score", rep.Reference))
	}

	for _, p := range policies {
		for _, w := range r.cfg.Threads {
			trials, err := r.runCell(ctx, log, p, w, a, b, ref)
			if err != nil {
				return nil, err
			}
			rep.Trials = append(rep.Trials, trials...)
		}
	}
	fillSpeedups(rep.Trials)
	log.Info("sweep finished", zap.Int("trials", len(rep.Trials)))

	return rep, nil
}

func (r *Runner) reference(a, b []byte) (*sw.Grid, error) {
	g, err := sw.NewGridWithLimit(len(a), len(b), r.cfg.MaxCells)
	if err != nil {
		return nil, err
	}
	if err := sw.FillSerial(g, a, b, r.cfg.Scoring); err != nil {
		return nil, err
	}

	return g, nil
}

// runCell runs all repeats of one (policy, workers) combination.
func (r *Runner) runCell(ctx context.Context, log *zap.Logger, p schedule.Policy, workers int, a, b []byte, ref *sw.Grid) ([]Trial, error) {
	al, err := sw.NewAligner(
		sw.WithPolicy(p),
		sw.WithWorkers(workers),
		sw.WithScoring(r.cfg.Scoring),
		sw.WithInvariantChecks(r.cfg.CheckInvariants),
		sw.WithMaxCells(r.cfg.MaxCells),
	)
	if err != nil {
		return nil, err
	}
	defer al.Close()
	g, err := al.NewGrid(len(a), len(b))
	if err != nil {
		return nil, err
	}

	trials := make([]Trial, 0, r.cfg.Repeats)
	for rep := 1; rep <= r.cfg.Repeats; rep++ {
		st, err := al.Fill(ctx, g, a, b)
		if err != nil {
			return nil, fmt.Errorf("bench: %v with %d workers: %w", p, workers, err)
		}
		score, _, _ := g.Max()
		t := Trial{
			Policy:  p.Name(),
			Variant: fmt.Sprint(p),
			Workers: workers,
			Repeat:  rep,
			Score:   score,
			Fill:    st.Fill,
			Cells:   st.Cells,
			Chunks:  st.Chunks,
			MCUPS:   st.MCUPS(),
		}
		if ref != nil {
			if !ref.Equal(g) {
				r.metrics.mismatch()
				log.Error("grid differs from serial reference",
					zap.String("policy", t.Variant), zap.Int("workers", workers), zap.Int32("score", score))
				return nil, fmt.Errorf("%w: %s with %d workers (score %d)", ErrMismatch, t.Variant, workers, score)
			}
			t.Verified = true
		}
		r.metrics.observe(t)
		log.Info("trial",
			zap.String("policy", t.Variant),
			zap.Int("workers", workers),
			zap.Int("repeat", rep),
			zap.Int32("score", score),
			zap.Duration("fill", st.Fill),
			zap.Float64("mcups", t.MCUPS),
			zap.Int64("chunks", st.Chunks),
		)
		trials = append(trials, t)
	}

	return trials, nil
}

// fillSpeedups sets Speedup = best single-worker fill / fill per variant.
func fillSpeedups(trials []Trial) {
	base := make(map[string]time.Duration)
	for _, t := range trials {
		if t.Workers != 1 || t.Fill <= 0 {
			continue
		}
		if cur, ok := base[t.Variant]; !ok || t.Fill < cur {
			base[t.Variant] = t.Fill
		}
	}
	for i := range trials {
		if b, ok := base[trials[i].Variant]; ok && trials[i].Fill > 0 {
			trials[i].Speedup = b.Seconds() / trials[i].Fill.Seconds()
		}
	}
}
