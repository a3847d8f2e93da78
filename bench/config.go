// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wavealign/schedule"
	"github.com/katalvlaran/wavealign/sequence"
	"github.com/katalvlaran/wavealign/smithwaterman"
)

// Defaults of the benchmark sweep.
const (
	DefaultLength  = 5000
	DefaultRepeats = 1
)

// DefaultThreads is the worker-count sweep.
var DefaultThreads = []int{1, 2, 4, 8}

// PolicyConfig names one scheduling policy of the sweep.
type PolicyConfig struct {
	Name  string `yaml:"name"`
	Chunk int    `yaml:"chunk,omitempty"`
}

// Config describes one benchmark sweep.
type Config struct {
	LengthA         int                   `yaml:"length_a"`
	LengthB         int                   `yaml:"length_b"`
	Seed            int64                 `yaml:"seed"`
	Alphabet        string                `yaml:"alphabet"`
	Scoring         smithwaterman.Scoring `yaml:"scoring"`
	Policies        []PolicyConfig        `yaml:"policies"`
	Threads         []int                 `yaml:"threads"`
	Repeats         int                   `yaml:"repeats"`
	Verify          bool                  `yaml:"verify"`
	CheckInvariants bool                  `yaml:"check_invariants"`
	MaxCells        int                   `yaml:"max_cells"`

	// VerifyParallelism bounds the concurrent checks of Verify.
	VerifyParallelism int `yaml:"verify_parallelism"`
}

// DefaultConfig returns a 5000×5000 DNA sweep over static, dynamic(64) and
// guided with 1, 2, 4 and 8 workers.
func DefaultConfig() Config {
	return Config{
		LengthA:  DefaultLength,
		LengthB:  DefaultLength,
		Alphabet: string(sequence.DNA),
		Scoring:  smithwaterman.DefaultScoring(),
		Policies: []PolicyConfig{
			{Name: schedule.NameBlock},
			{Name: schedule.NameDynamic, Chunk: schedule.DefaultDynamicChunk},
			{Name: schedule.NameGuided},
		},
		Threads:  append([]int(nil), DefaultThreads...),
		Repeats:  DefaultRepeats,
		MaxCells: smithwaterman.DefaultMaxCells,

		VerifyParallelism: DefaultVerifyParallelism,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are rejected;
// an empty file yields the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("bench: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig decodes YAML from r over DefaultConfig and validates the result.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("bench: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// VerifyOptions returns the Verify limits of this sweep.
func (c Config) VerifyOptions() VerifyOptions {
	return VerifyOptions{MaxCells: c.MaxCells, Parallelism: c.VerifyParallelism}
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case c.LengthA < 1 || c.LengthB < 1:
		return fmt.Errorf("%w: lengths must be >= 1 (got %d, %d)", ErrBadConfig, c.LengthA, c.LengthB)
	case c.Alphabet == "":
		return fmt.Errorf("%w: alphabet is empty", ErrBadConfig)
	case len(c.Policies) == 0:
		return fmt.Errorf("%w: no policies", ErrBadConfig)
	case len(c.Threads) == 0:
		return fmt.Errorf("%w: no thread counts", ErrBadConfig)
	case c.Repeats < 1:
		return fmt.Errorf("%w: repeats must be >= 1", ErrBadConfig)
	case c.MaxCells < 1:
		return fmt.Errorf("%w: max_cells must be >= 1", ErrBadConfig)
	case c.VerifyParallelism < 1:
		return fmt.Errorf("%w: verify_parallelism must be >= 1", ErrBadConfig)
	}
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if err := c.Scoring.CheckBound(c.LengthA, c.LengthB); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	for _, t := range c.Threads {
		if t < 1 {
			return fmt.Errorf("%w: thread count %d < 1", ErrBadConfig, t)
		}
	}
	if _, err := c.ParsePolicies(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return nil
}

// ParsePolicies resolves the configured policy names.
func (c Config) ParsePolicies() ([]schedule.Policy, error) {
	out := make([]schedule.Policy, 0, len(c.Policies))
	for _, pc := range c.Policies {
		p, err := schedule.ParsePolicy(pc.Name, pc.Chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
