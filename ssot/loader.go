package ssot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/unalgebra/generator"
	"github.com/katalvlaran/unalgebra/un"
)

// Load reads and parses the file at path.
//
// Errors: ErrConfigNotFound when the file is missing, ErrInvalidConfig for
// malformed YAML, unknown keys or out-of-range values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Load %s: %w", path, ErrConfigNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes an SSOT document. Unknown keys are rejected so that typos
// ("trails_per_test") fail loudly instead of silently using defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidf("empty document")
		}
		if errors.Is(err, ErrInvalidConfig) {
			return nil, err
		}

		return nil, invalidf("%v", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	atol, rtol := Real(un.DefaultAtol), Real(un.DefaultRtol)

	return &Config{
		Defaults: Defaults{
			TrialsPerTest: DefaultTrials,
			Seeds:         map[string]int64{GlobalSeed: generator.DefaultSeed},
			Atol:          &atol,
			Rtol:          &rtol,
		},
	}
}

func (c *Config) validate() error {
	d := c.Defaults
	if d.TrialsPerTest < 0 {
		return invalidf("defaults.trials_per_test must be non-negative, got %d", d.TrialsPerTest)
	}
	if d.Atol != nil && *d.Atol < 0 {
		return invalidf("defaults.atol must be non-negative, got %g", float64(*d.Atol))
	}
	if d.Rtol != nil && *d.Rtol < 0 {
		return invalidf("defaults.rtol must be non-negative, got %g", float64(*d.Rtol))
	}

	seen := make(map[string]struct{}, len(c.Invariants))
	for i, inv := range c.Invariants {
		if inv.ID == "" {
			return invalidf("invariants[%d]: id is required", i)
		}
		if _, dup := seen[inv.ID]; dup {
			return invalidf("invariants[%d]: duplicate id %q", i, inv.ID)
		}
		seen[inv.ID] = struct{}{}
		if inv.Trials < 0 {
			return invalidf("invariants[%d] (%s): trials must be non-negative", i, inv.ID)
		}
	}

	return nil
}
