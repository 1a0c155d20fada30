// SPDX-License-Identifier: MIT

package un

import (
	"fmt"
	"math"
)

// Numeric defaults. They are the fallback when no configuration is supplied.
const (
	// DefaultLambda is the calibration point of Mul: conservative against the
	// classical oracle and tight against the centred product hull.
	DefaultLambda = 1.0

	// DefaultAtol is the absolute tolerance of DefaultTolerance.
	DefaultAtol = 1e-12

	// DefaultRtol is the relative tolerance of DefaultTolerance.
	DefaultRtol = 1e-9

	// TightnessSlack is the documented relative slack of Mul at λ = 1:
	// the projected radius stays within (1 + TightnessSlack) of the hull radius.
	TightnessSlack = 1e-3
)

// Tier is one provenance tier: a nominal and its uncertainty radius.
type Tier struct {
	N float64 // nominal
	U float64 // radius, ≥ 0
}

// UN is an immutable Uncertainty Number.
//
// Fields are unexported: a UN is obtained from New/NewWithin, from an operator
// or from the generator, so every live value has passed validation. The zero
// value ((0,0),(0,0)) is valid.
type UN struct {
	actual   Tier
	measured Tier
}

// New validates and returns ((actual), (measured)) with zero tolerance.
// Errors: ErrNonFiniteValue, ErrInvalidUncertainty, ErrTriangleViolation.
func New(actual, measured Tier) (UN, error) {
	return NewWithin(actual, measured, 0)
}

// NewWithin is New with a caller-supplied triangle tolerance.
// Values are rejected, never repaired.
func NewWithin(actual, measured Tier, tol float64) (UN, error) {
	x := UN{actual: actual, measured: measured}
	if err := Check(x, tol); err != nil {
		return UN{}, unErrorf(opNew, err)
	}

	return x, nil
}

// Actual returns the actual tier (n_a, u_t).
func (x UN) Actual() Tier { return x.actual }

// Measured returns the measured tier (n_m, u_m).
func (x UN) Measured() Tier { return x.measured }

// Components returns (n_a, u_t, n_m, u_m).
func (x UN) Components() (na, ut, nm, um float64) {
	return x.actual.N, x.actual.U, x.measured.N, x.measured.U
}

// Gap returns |n_m − n_a|.
func (x UN) Gap() float64 { return math.Abs(x.measured.N - x.actual.N) }

// Budget is the method form of Budget(x).
func (x UN) Budget() float64 { return Budget(x) }

// Close reports componentwise equality within tol.
func (x UN) Close(y UN, tol Tolerance) bool {
	return tol.Close(x.actual.N, y.actual.N) &&
		tol.Close(x.actual.U, y.actual.U) &&
		tol.Close(x.measured.N, y.measured.N) &&
		tol.Close(x.measured.U, y.measured.U)
}

// Identical reports bitwise equality of all four fields.
// Use it only where an operator promises exactness (Flip, commutativity).
func (x UN) Identical(y UN) bool { return x == y }

// String renders ((n_a, u_t), (n_m, u_m)).
func (x UN) String() string {
	return fmt.Sprintf("((%g, %g), (%g, %g))", x.actual.N, x.actual.U, x.measured.N, x.measured.U)
}
