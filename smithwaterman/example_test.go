// SPDX-License-Identifier: MIT

package smithwaterman_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wavealign/schedule"
	sw "github.com/katalvlaran/wavealign/smithwaterman"
)

// ExampleAlign scores the textbook pair with the default scheme (3/-3/-2).
func ExampleAlign() {
	res, err := sw.Align(context.Background(), []byte("GATTACA"), []byte("GCATGCU"),
		sw.WithWorkers(4),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d at (%d,%d)\n", res.Score, res.Row, res.Col)
	// Output:
	// score=7 at (3,4)
}

// ExampleAligner_Align compares policies on one pair: the score never depends
// on the policy.
func ExampleAligner_Align() {
	x, y := []byte("TGTTACGG"), []byte("GGTTGACTA")
	for _, p := range schedule.Policies() {
		a, err := sw.NewAligner(sw.WithPolicy(p), sw.WithWorkers(3))
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		res, err := a.Align(context.Background(), x, y)
		a.Close()
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s score=%d\n", res.Policy, res.Score)
	}
	// Output:
	// static score=13
	// dynamic score=13
	// guided score=13
}

// ExampleGrid shows the filled matrix of two identical sequences.
func ExampleGrid() {
	x := []byte("ACGT")
	g, _ := sw.NewGrid(len(x), len(x))
	_ = sw.FillSerial(g, x, x, sw.DefaultScoring())
	fmt.Print(g)
	// Output:
	// [0, 0, 0, 0, 0]
	// [0, 3, 1, 0, 0]
	// [0, 1, 6, 4, 2]
	// [0, 0, 4, 9, 7]
	// [0, 0, 2, 7, 12]
}
