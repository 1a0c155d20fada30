package generator

import (
	"math"
	"math/rand"
)

// Defaults (single source of truth for zero-option behavior).
const (
	// DefaultMinDecade and DefaultMaxDecade bound the log-uniform scale 10^[lo, hi).
	DefaultMinDecade = -12.0
	DefaultMaxDecade = 12.0

	// DefaultSlack is the relative margin added on top of a repaired surplus.
	DefaultSlack = 1e-12

	// DefaultShareLo and DefaultShareHi bound the fraction of the surplus
	// assigned to u_t during repair.
	DefaultShareLo = 0.2
	DefaultShareHi = 0.8

	// maxDecade keeps triple products of samples finite.
	maxDecade = 100.0
)

const (
	panicRandNil    = "generator: WithRand(nil)"
	panicDecadesBad = "generator: WithDecades: need finite lo < hi within ±100"
	panicSlackBad   = "generator: WithSlack: slack must be finite and non-negative"
	panicShareBad   = "generator: WithShare: need 0 ≤ lo ≤ hi ≤ 1"
)

// Option customizes a Generator. Constructors panic on meaningless values;
// Next and Boundary never panic.
type Option func(*config)

type config struct {
	rng              *rand.Rand
	lo, hi           float64
	slack            float64
	shareLo, shareHi float64
}

func defaultConfig() config {
	return config{
		lo:      DefaultMinDecade,
		hi:      DefaultMaxDecade,
		slack:   DefaultSlack,
		shareLo: DefaultShareLo,
		shareHi: DefaultShareHi,
	}
}

// WithSeed seeds a fresh *rand.Rand (seed == 0 ⇒ DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand uses r directly. The generator then shares r's state with the caller.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(c *config) { c.rng = r }
}

// WithDecades sets the scale range 10^[lo, hi).
func WithDecades(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo >= hi || lo < -maxDecade || hi > maxDecade {
		panic(panicDecadesBad)
	}

	return func(c *config) { c.lo, c.hi = lo, hi }
}

// WithSlack sets the relative repair slack (multiplied by the sample scale).
func WithSlack(rel float64) Option {
	if math.IsNaN(rel) || math.IsInf(rel, 0) || rel < 0 {
		panic(panicSlackBad)
	}

	return func(c *config) { c.slack = rel }
}

// WithShare bounds the random fraction of a repaired surplus given to u_t.
func WithShare(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || hi > 1 || lo > hi {
		panic(panicShareBad)
	}

	return func(c *config) { c.shareLo, c.shareHi = lo, hi }
}
