package classical

import (
	"fmt"
	"math"
)

// Number is a classical uncertain value n ± u.
// Values are plain immutable records; every operation returns a new Number.
type Number struct {
	N float64 // nominal
	U float64 // symmetric radius, ≥ 0
}

// New validates and returns n ± u.
// Errors: ErrNonFiniteValue, then ErrInvalidUncertainty.
func New(n, u float64) (Number, error) {
	if isNonFinite(n) || isNonFinite(u) {
		return Number{}, ErrNonFiniteValue
	}
	if u < 0 {
		return Number{}, ErrInvalidUncertainty
	}

	return Number{N: n, U: u}, nil
}

// Width returns the full interval width 2·U.
func (x Number) Width() float64 { return 2 * x.U }

// Interval returns the closed interval [N−U, N+U].
func (x Number) Interval() (lo, hi float64) { return x.N - x.U, x.N + x.U }

// String renders the value as "n ± u".
func (x Number) String() string { return fmt.Sprintf("%g ± %g", x.N, x.U) }

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
