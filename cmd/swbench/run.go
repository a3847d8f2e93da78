// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wavealign/bench"
)

func newRunCommand(opts *RootOptions) *cobra.Command {
	var (
		flags       sweepFlags
		verify      bool
		invariants  bool
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scheduling sweep on a generated sequence pair",
		Long: `Generates two random DNA sequences, fills the score grid once per
policy, worker count and repeat, and prints fill time, MCUPS and speedup
against the single-worker fill of the same policy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verify") {
				cfg.Verify = verify
			}
			if cmd.Flags().Changed("check-invariants") {
				cfg.CheckInvariants = invariants
			}
			if err := flags.apply(cmd, &cfg); err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics, err := bench.NewMetrics(reg)
			if err != nil {
				return err
			}
			runner, err := bench.NewRunner(cfg, opts.log, metrics)
			if err != nil {
				return err
			}
			rep, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			if err := bench.WriteTable(cmd.OutOrStdout(), rep); err != nil {
				return err
			}
			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&verify, "verify", false, "compare every trial with a serial fill")
	cmd.Flags().BoolVar(&invariants, "check-invariants", false, "track resolved cells and partitions during the fill")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to this textfile")

	return cmd
}
