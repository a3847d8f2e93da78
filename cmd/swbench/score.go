// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wavealign/schedule"
	"github.com/katalvlaran/wavealign/sequence"
	sw "github.com/katalvlaran/wavealign/smithwaterman"
)

func newScoreCommand(opts *RootOptions) *cobra.Command {
	var (
		aFile, bFile string
		policy       string
		chunk        int
		workers      int
		alphabet     string
		match        int32
		mismatch     int32
		gap          int32
		grid         bool
	)
	cmd := &cobra.Command{
		Use:   "score [A B]",
		Short: "Print the local-alignment score of two sequences",
		Long: `Scores two sequences given as arguments or read from plain or
FASTA files with --a-file and --b-file. Any symbols are accepted unless
--alphabet restricts them (e.g. --alphabet ACGT).`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := scoreInputs(args, aFile, bFile, sequence.Alphabet(strings.ToUpper(alphabet)))
			if err != nil {
				return err
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be >= 1, got %d", workers)
			}
			p, err := schedule.ParsePolicy(policy, chunk)
			if err != nil {
				return err
			}
			scoring := sw.Scoring{Match: match, Mismatch: mismatch, Gap: gap}

			res, err := sw.Align(cmd.Context(), a, b,
				sw.WithPolicy(p), sw.WithWorkers(workers), sw.WithScoring(scoring))
			if err != nil {
				return err
			}
			opts.log.Debug("scored",
				zap.Int("length_a", len(a)),
				zap.Int("length_b", len(b)),
				zap.String("policy", fmt.Sprint(p)),
				zap.Int("workers", workers),
				zap.Duration("fill", res.Stats.Fill),
			)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "score=%d at (%d,%d)\n", res.Score, res.Row, res.Col)
			if grid {
				fmt.Fprint(out, res.Grid.String())
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&aFile, "a-file", "", "read the first sequence from a file")
	fs.StringVar(&bFile, "b-file", "", "read the second sequence from a file")
	fs.StringVar(&policy, "policy", schedule.NameBlock, "scheduling policy (static, dynamic, guided)")
	fs.IntVar(&chunk, "chunk", 0, "dynamic chunk size / guided minimum chunk (0 selects the default)")
	fs.IntVar(&workers, "workers", 1, "worker count")
	fs.StringVar(&alphabet, "alphabet", "", "allowed symbols (empty accepts any)")
	fs.Int32Var(&match, "match", sw.DefaultMatch, "match score")
	fs.Int32Var(&mismatch, "mismatch", sw.DefaultMismatch, "mismatch score")
	fs.Int32Var(&gap, "gap", sw.DefaultGap, "gap score")
	fs.BoolVar(&grid, "grid", false, "also print the score grid")

	return cmd
}

// scoreInputs resolves the two sequences from args or files.
func scoreInputs(args []string, aFile, bFile string, alpha sequence.Alphabet) (sequence.Sequence, sequence.Sequence, error) {
	var seqs [2]sequence.Sequence
	files := [2]string{aFile, bFile}
	next := 0
	for i := range seqs {
		var err error
		switch {
		case files[i] != "":
			seqs[i], err = sequence.ReadFile(files[i], alpha)
		case next < len(args):
			seqs[i], err = sequence.New(args[next], alpha)
			next++
		default:
			return nil, nil, fmt.Errorf("missing sequence %c: pass it as an argument or with --%c-file", 'A'+i, 'a'+i)
		}
		if err != nil {
			return nil, nil, err
		}
	}
	if next < len(args) {
		return nil, nil, fmt.Errorf("unexpected argument %q", args[next])
	}

	return seqs[0], seqs[1], nil
}
