// SPDX-License-Identifier: MIT

package sequence

import "math/rand"

// defaultSeed is used when callers pass seed 0.
const defaultSeed int64 = 1

// Generator draws symbols uniformly from an alphabet.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng   *rand.Rand
	alpha Alphabet
}

// NewGenerator returns a deterministic generator: the same seed and alphabet
// always produce the same sequences in the same order.
func NewGenerator(seed int64, alpha Alphabet) (*Generator, error) {
	if alpha.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}
	if seed == 0 {
		seed = defaultSeed
	}

	return &Generator{rng: rand.New(rand.NewSource(seed)), alpha: alpha}, nil
}

// Generate returns a fresh sequence of length n.
func (g *Generator) Generate(n int) (Sequence, error) {
	if n < 1 {
		return nil, ErrBadLength
	}
	seq := make(Sequence, n)
	k := g.alpha.Len()
	for i := range seq {
		seq[i] = g.alpha[g.rng.Intn(k)]
	}

	return seq, nil
}

// Pair generates two independent sequences of lengths n and m.
func (g *Generator) Pair(n, m int) (Sequence, Sequence, error) {
	a, err := g.Generate(n)
	if err != nil {
		return nil, nil, err
	}
	b, err := g.Generate(m)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}
