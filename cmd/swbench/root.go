// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/wavealign/bench"
)

// RootOptions holds the global flags and the logger built from them.
type RootOptions struct {
	Verbose bool
	Config  string

	log *zap.Logger
}

// NewRootCommand creates the swbench command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "swbench",
		Short:         "Wavefront Smith-Waterman scoring and scheduling benchmark",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.log != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if opts.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			log, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "YAML sweep configuration")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newScoreCommand(opts))
	cmd.AddCommand(newVerifyCommand(opts))

	return cmd
}

// loadConfig returns the --config file decoded over the defaults, or the
// defaults alone.
func (o *RootOptions) loadConfig() (bench.Config, error) {
	if o.Config == "" {
		return bench.DefaultConfig(), nil
	}

	return bench.LoadConfig(o.Config)
}

// sweepFlags are the config overrides shared by run and verify.
type sweepFlags struct {
	n, m     int
	seed     int64
	threads  []int
	policies []string
	chunk    int
	repeats  int
}

func (f *sweepFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.n, "n", bench.DefaultLength, "length of the first sequence")
	fs.IntVar(&f.m, "m", bench.DefaultLength, "length of the second sequence")
	fs.Int64Var(&f.seed, "seed", 0, "generator seed (0 selects the default seed)")
	fs.IntSliceVar(&f.threads, "threads", bench.DefaultThreads, "worker counts to sweep")
	fs.StringSliceVar(&f.policies, "policies", []string{"static", "dynamic", "guided"}, "scheduling policies")
	fs.IntVar(&f.chunk, "chunk", 0, "dynamic chunk size / guided minimum chunk (0 selects the default)")
	fs.IntVar(&f.repeats, "repeats", bench.DefaultRepeats, "fills per policy and worker count")
}

// apply overlays the flags the user set on cfg and revalidates it.
func (f *sweepFlags) apply(cmd *cobra.Command, cfg *bench.Config) error {
	fs := cmd.Flags()
	if fs.Changed("n") {
		cfg.LengthA = f.n
	}
	if fs.Changed("m") {
		cfg.LengthB = f.m
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("threads") {
		cfg.Threads = f.threads
	}
	if fs.Changed("repeats") {
		cfg.Repeats = f.repeats
	}
	if fs.Changed("policies") || fs.Changed("chunk") {
		names := f.policies
		if !fs.Changed("policies") {
			names = nil
			for _, pc := range cfg.Policies {
				names = append(names, pc.Name)
			}
		}
		cfg.Policies = make([]bench.PolicyConfig, 0, len(names))
		for _, name := range names {
			cfg.Policies = append(cfg.Policies, bench.PolicyConfig{Name: name, Chunk: f.chunk})
		}
	}

	return cfg.Validate()
}
