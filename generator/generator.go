package generator

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/unalgebra/un"
)

// maxNudges bounds the ulp nudges applied to u_m before a draft is redrawn.
const maxNudges = 64

// Generator produces valid un.UN samples. Not goroutine-safe.
type Generator struct {
	cfg config
	rng *rand.Rand
}

// New builds a generator. Without WithSeed/WithRand it uses DefaultSeed.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return &Generator{cfg: cfg, rng: cfg.rng}
}

// Next draws one boundary-biased sample:
//  1. s = 10^U(lo, hi)
//  2. n_a = N(0,1)·s, n_m = n_a + N(0,1)·s, u_t = |N(0,1)|·s, u_m = |N(0,1)|·s
//  3. if |n_m − n_a| > u_t + u_m, split the surplus + s·slack between u_t and
//     u_m with a share drawn from U(shareLo, shareHi)
func (g *Generator) Next() un.UN {
	for {
		s := g.scale()
		na := g.rng.NormFloat64() * s
		nm := na + g.rng.NormFloat64()*s
		ut := math.Abs(g.rng.NormFloat64()) * s
		um := math.Abs(g.rng.NormFloat64()) * s

		if d := math.Abs(nm - na); d > ut+um {
			bump := d - (ut + um) + s*g.cfg.slack
			share := g.share()
			ut += bump * share
			um += bump * (1 - share)
		}
		if x, ok := settle(na, ut, nm, um); ok {
			return x
		}
	}
}

// Boundary draws a sample with n_m = n_a ± (u_t + u_m) exactly, up to the
// ulp nudges needed to survive rounding.
func (g *Generator) Boundary() un.UN {
	for {
		s := g.scale()
		na := g.rng.NormFloat64() * s
		ut := math.Abs(g.rng.NormFloat64()) * s
		um := math.Abs(g.rng.NormFloat64()) * s
		sign := 1.0
		if g.rng.Float64() < 0.5 {
			sign = -1.0
		}
		nm := na + sign*(ut+um)

		if x, ok := settle(na, ut, nm, um); ok {
			return x
		}
	}
}

// Sample returns n values from Next. n ≤ 0 yields an empty slice.
func (g *Generator) Sample(n int) []un.UN {
	if n <= 0 {
		return []un.UN{}
	}
	out := make([]un.UN, n)
	for i := range out {
		out[i] = g.Next()
	}

	return out
}

func (g *Generator) scale() float64 {
	return math.Pow(10, g.cfg.lo+g.rng.Float64()*(g.cfg.hi-g.cfg.lo))
}

func (g *Generator) share() float64 {
	return g.cfg.shareLo + g.rng.Float64()*(g.cfg.shareHi-g.cfg.shareLo)
}

// settle builds the value, nudging u_m upward by single ulps while rounding
// keeps it on the wrong side of the triangle. ok=false asks for a redraw.
func settle(na, ut, nm, um float64) (un.UN, bool) {
	for i := 0; i <= maxNudges; i++ {
		x, err := un.New(un.Tier{N: na, U: ut}, un.Tier{N: nm, U: um})
		if err == nil {
			return x, true
		}
		um = math.Nextafter(um, math.Inf(1))
	}

	return un.UN{}, false
}
