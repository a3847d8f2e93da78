// SPDX-License-Identifier: MIT

package smithwaterman_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sw "github.com/katalvlaran/wavealign/smithwaterman"
)

// TestCell covers each winning candidate and the zero floor.
func TestCell(t *testing.T) {
	s := sw.DefaultScoring()
	cases := []struct {
		name           string
		diag, up, left int32
		a, b           byte
		want           int32
	}{
		{"match from diag", 4, 0, 0, 'A', 'A', 7},
		{"mismatch from diag", 9, 0, 0, 'A', 'C', 6},
		{"gap from up", 0, 10, 1, 'A', 'C', 8},
		{"gap from left", 0, 1, 10, 'A', 'C', 8},
		{"floor at zero", 0, 1, 1, 'A', 'C', 0},
		{"tie diag/up", 2, 7, 0, 'G', 'G', 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sw.Cell(tc.diag, tc.up, tc.left, tc.a, tc.b, s), tc.name)
	}
}

// TestScoring_Validate checks sign constraints.
func TestScoring_Validate(t *testing.T) {
	assert.NoError(t, sw.DefaultScoring().Validate())
	assert.NoError(t, sw.Scoring{Match: 1, Mismatch: 0, Gap: 0}.Validate())
	for _, s := range []sw.Scoring{
		{Match: 0, Mismatch: -1, Gap: -1},
		{Match: 2, Mismatch: 1, Gap: -1},
		{Match: 2, Mismatch: -1, Gap: 1},
	} {
		assert.ErrorIs(t, s.Validate(), sw.ErrBadScoring, "%+v", s)
	}
}

// TestScoring_Defaults pins the default scheme.
func TestScoring_Defaults(t *testing.T) {
	s := sw.DefaultScoring()
	assert.Equal(t, sw.Scoring{Match: 3, Mismatch: -3, Gap: -2}, s)
	assert.Equal(t, int32(3), s.Substitution('T', 'T'))
	assert.Equal(t, int32(-3), s.Substitution('T', 'A'))
}

// TestScoring_CheckBound rejects schemes whose best score leaves int32.
func TestScoring_CheckBound(t *testing.T) {
	huge := sw.Scoring{Match: 1 << 30, Mismatch: -1, Gap: -1}
	assert.NoError(t, huge.CheckBound(1, 5), "one match fits")
	assert.NoError(t, huge.CheckBound(9, 1), "bounded by the shorter sequence")
	assert.ErrorIs(t, huge.CheckBound(3, 3), sw.ErrScoreOverflow)

	edge := sw.Scoring{Match: math.MaxInt32, Mismatch: 0, Gap: 0}
	assert.NoError(t, edge.CheckBound(1, 1))
	assert.ErrorIs(t, edge.CheckBound(2, 2), sw.ErrScoreOverflow)
	assert.NoError(t, sw.DefaultScoring().CheckBound(5000, 5000))
}

// TestScoreOverflow_Rejected covers every entry point that fills a grid.
func TestScoreOverflow_Rejected(t *testing.T) {
	huge := sw.Scoring{Match: 1 << 30, Mismatch: -1, Gap: -1}
	x, y := []byte("AAA"), []byte("AAA")

	res, err := sw.Align(context.Background(), x, y, sw.WithScoring(huge), sw.WithWorkers(2))
	assert.ErrorIs(t, err, sw.ErrScoreOverflow)
	assert.Nil(t, res)

	a, err := sw.NewAligner(sw.WithScoring(huge))
	require.NoError(t, err)
	defer a.Close()
	g, err := a.NewGrid(3, 3)
	require.NoError(t, err)
	_, err = a.Fill(context.Background(), g, x, y)
	assert.ErrorIs(t, err, sw.ErrScoreOverflow)

	assert.ErrorIs(t, sw.FillSerial(g, x, y, huge), sw.ErrScoreOverflow)
	_, err = sw.ScoreSerial(x, y, huge)
	assert.ErrorIs(t, err, sw.ErrScoreOverflow)

	score, err := sw.ScoreSerial([]byte("A"), []byte("A"), huge)
	require.NoError(t, err)
	assert.Equal(t, int32(1<<30), score)
}
