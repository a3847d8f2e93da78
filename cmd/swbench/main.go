// SPDX-License-Identifier: MIT

// Command swbench runs the wavefront Smith-Waterman aligner: a scheduling
// benchmark sweep (run), a single score (score) and a cross-policy
// equivalence check (verify).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "swbench:", err)
		os.Exit(1)
	}
}
