// SPDX-License-Identifier: MIT

package sequence_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavealign/sequence"
)

// TestNew_Validates upper-cases input and rejects foreign symbols.
func TestNew_Validates(t *testing.T) {
	s, err := sequence.New("gattaca", sequence.DNA)
	require.NoError(t, err)
	assert.Equal(t, "GATTACA", s.String())

	_, err = sequence.New("GCATGCU", sequence.DNA)
	assert.ErrorIs(t, err, sequence.ErrBadSymbol, "U is not a DNA base")

	s, err = sequence.New("xyz", "")
	require.NoError(t, err, "empty alphabet accepts anything")
	assert.Equal(t, sequence.Sequence("XYZ"), s)
}

// TestGenerator_Deterministic verifies same seed ⇒ same output, and symbols
// stay inside the alphabet.
func TestGenerator_Deterministic(t *testing.T) {
	g1, err := sequence.NewGenerator(42, sequence.DNA)
	require.NoError(t, err)
	g2, err := sequence.NewGenerator(42, sequence.DNA)
	require.NoError(t, err)

	a1, b1, err := g1.Pair(500, 300)
	require.NoError(t, err)
	a2, b2, err := g2.Pair(500, 300)
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Len(t, a1, 500)
	assert.Len(t, b1, 300)
	assert.NotEqual(t, a1[:300], b1, "consecutive draws must differ")
	assert.NoError(t, a1.Validate(sequence.DNA))

	// every base shows up in a long uniform draw
	for _, base := range []byte(sequence.DNA) {
		assert.Contains(t, a1.String(), string(base))
	}
}

// TestGenerator_ZeroSeed maps seed 0 to the fixed default.
func TestGenerator_ZeroSeed(t *testing.T) {
	g0, err := sequence.NewGenerator(0, sequence.DNA)
	require.NoError(t, err)
	g1, err := sequence.NewGenerator(1, sequence.DNA)
	require.NoError(t, err)
	s0, _ := g0.Generate(64)
	s1, _ := g1.Generate(64)
	assert.Equal(t, s1, s0)
}

// TestGenerator_Errors covers empty alphabets and bad lengths.
func TestGenerator_Errors(t *testing.T) {
	_, err := sequence.NewGenerator(1, "")
	assert.ErrorIs(t, err, sequence.ErrEmptyAlphabet)

	g, err := sequence.NewGenerator(1, sequence.DNA)
	require.NoError(t, err)
	_, err = g.Generate(0)
	assert.ErrorIs(t, err, sequence.ErrBadLength)
	_, _, err = g.Pair(3, -1)
	assert.ErrorIs(t, err, sequence.ErrBadLength)
}

// TestGCContent checks the GC fraction helper.
func TestGCContent(t *testing.T) {
	assert.Equal(t, 0.0, sequence.Sequence(nil).GCContent())
	assert.InDelta(t, 0.5, sequence.Sequence("ACGT").GCContent(), 1e-12)
	assert.InDelta(t, 1.0, sequence.Sequence("gcGC").GCContent(), 1e-12)
}

// TestRead_FASTA parses headers, comments, blank lines and wrapped bodies.
func TestRead_FASTA(t *testing.T) {
	in := strings.Join([]string{
		">seq1 description",
		"; comment",
		"GATT",
		"",
		"ac a",
		">seq2",
		"TTTT",
	}, "\n")
	s, err := sequence.Read(strings.NewReader(in), sequence.DNA)
	require.NoError(t, err)
	assert.Equal(t, "GATTACA", s.String())

	_, err = sequence.Read(strings.NewReader(">only header\n"), sequence.DNA)
	assert.ErrorIs(t, err, sequence.ErrEmptyInput)

	_, err = sequence.Read(strings.NewReader("GATTAXA"), sequence.DNA)
	assert.ErrorIs(t, err, sequence.ErrBadSymbol)
}

// TestReadFile reads a plain text file and reports missing files.
func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "query1.txt")
	require.NoError(t, os.WriteFile(path, []byte("gcatgca\n"), 0o644))

	s, err := sequence.ReadFile(path, sequence.DNA)
	require.NoError(t, err)
	assert.Equal(t, "GCATGCA", s.String())

	_, err = sequence.ReadFile(filepath.Join(dir, "missing.txt"), sequence.DNA)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
