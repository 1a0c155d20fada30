package ssot

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/unalgebra/generator"
	"github.com/katalvlaran/unalgebra/un"
)

// ApplyEnv captures SSOT_TRIALS through lookup (typically os.LookupEnv).
// An unset or empty variable leaves c unchanged.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	raw, ok := lookup(EnvTrials)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return invalidf("%s=%q: want a positive integer", EnvTrials, raw)
	}
	c.envTrials = n

	return nil
}

// Trials resolves the global trial count. override > 0 wins.
func (c *Config) Trials(override int) int {
	return c.TrialsFor("", override)
}

// TrialsFor resolves the trial count for one invariant: override >
// SSOT_TRIALS > invariant trials > defaults.trials_per_test > DefaultTrials.
func (c *Config) TrialsFor(id string, override int) int {
	switch {
	case override > 0:
		return override
	case c.envTrials > 0:
		return c.envTrials
	}
	if inv, ok := c.Invariant(id); ok && inv.Trials > 0 {
		return inv.Trials
	}
	if c.Defaults.TrialsPerTest > 0 {
		return c.Defaults.TrialsPerTest
	}

	return DefaultTrials
}

// Seed returns the seed for category, falling back to "global" and then to
// generator.DefaultSeed.
func (c *Config) Seed(category string) int64 {
	if s, ok := c.Defaults.Seeds[category]; ok {
		return s
	}
	if s, ok := c.Defaults.Seeds[GlobalSeed]; ok {
		return s
	}

	return generator.DefaultSeed
}

// Tolerance returns the comparison policy the algebra consumes.
func (c *Config) Tolerance() un.Tolerance {
	tol := un.DefaultTolerance()
	if c.Defaults.Atol != nil {
		tol.Atol = float64(*c.Defaults.Atol)
	}
	if c.Defaults.Rtol != nil {
		tol.Rtol = float64(*c.Defaults.Rtol)
	}

	return tol
}

// Threshold looks up a named threshold.
func (c *Config) Threshold(name string) (Threshold, bool) {
	t, ok := c.Defaults.Thresholds[name]
	return t, ok
}

// Invariant looks up a catalogue entry by id.
func (c *Config) Invariant(id string) (Invariant, bool) {
	for _, inv := range c.Invariants {
		if inv.ID == id {
			return inv, true
		}
	}

	return Invariant{}, false
}
