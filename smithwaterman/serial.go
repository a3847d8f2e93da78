// SPDX-License-Identifier: MIT

package smithwaterman

import "fmt"

// FillSerial fills g row by row on the calling goroutine. It shares no code
// with the wavefront path and serves as the reference the parallel fill is
// checked against.
func FillSerial(g *Grid, x, y []byte, s Scoring) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(x) == 0 || len(y) == 0 {
		return ErrEmptySequence
	}
	if g.n != len(x) || g.m != len(y) {
		return fmt.Errorf("%w: grid %d×%d, sequences %d and %d", ErrShapeMismatch, g.Rows(), g.Cols(), len(x), len(y))
	}
	if err := s.CheckBound(g.n, g.m); err != nil {
		return err
	}
	g.Reset()
	w := g.stride
	for i := 1; i <= g.n; i++ {
		for j := 1; j <= g.m; j++ {
			sub := s.Mismatch
			if x[i-1] == y[j-1] {
				sub = s.Match
			}
			v := max(0, g.data[(i-1)*w+j-1]+sub, g.data[(i-1)*w+j]+s.Gap, g.data[i*w+j-1]+s.Gap)
			g.data[i*w+j] = v
			if g.resolved != nil {
				g.resolved[i*w+j] = true
			}
		}
	}

	return nil
}

// ScoreSerial returns the local-alignment score of x and y computed by FillSerial.
func ScoreSerial(x, y []byte, s Scoring) (int32, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptySequence
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := s.CheckBound(len(x), len(y)); err != nil {
		return 0, err
	}
	g, err := NewGrid(len(x), len(y))
	if err != nil {
		return 0, err
	}
	if err := FillSerial(g, x, y, s); err != nil {
		return 0, err
	}
	v, _, _ := g.Max()

	return v, nil
}
