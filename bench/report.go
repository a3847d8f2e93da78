// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable renders rep as an aligned text table, one row per trial.
func WriteTable(w io.Writer, rep *Report) error {
	if _, err := fmt.Fprintf(w, "Sequence Lengths: %d x %d\nTotal Matrix Cells: %d\n",
		rep.LengthA, rep.LengthB, int64(rep.LengthA)*int64(rep.LengthB)); err != nil {
		return err
	}
	if rep.Verified {
		if _, err := fmt.Fprintf(w, "Serial Reference Score: %d\n", rep.Reference); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Schedule\tThreads\tTime (s)\tMCUPS\tSpeedup\tScore\t")
	for _, t := range rep.Trials {
		speedup := "-"
		if t.Speedup > 0 {
			speedup = fmt.Sprintf("%.2fx", t.Speedup)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.1f\t%s\t%d\t\n",
			t.Variant, t.Workers, t.Fill.Seconds(), t.MCUPS, speedup, t.Score)
	}

	return tw.Flush()
}
