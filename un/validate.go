// SPDX-License-Identifier: MIT

package un

import "math"

// roundoff is the relative rounding allowance used when operators re-check
// their own results: a handful of ulps times the magnitude of the operands.
const roundoff = 64 * 0x1p-52

// Validate reports whether x satisfies the UN invariant within tol:
// finite fields, u_t ≥ 0, u_m ≥ 0 and |n_m − n_a| ≤ u_t + u_m + tol.
// An invalid tol yields false.
//
// Complexity: O(1).
func Validate(x UN, tol float64) bool {
	return Check(x, tol) == nil
}

// Check is Validate with a reason. Checks run in a fixed order:
// tolerance → finiteness → radius sign → triangle.
//
// Errors: ErrInvalidTolerance, ErrNonFiniteValue, ErrInvalidUncertainty,
// ErrTriangleViolation (unwrapped; callers add context).
func Check(x UN, tol float64) error {
	if !validTol(tol) {
		return ErrInvalidTolerance
	}
	na, ut, nm, um := x.Components()
	if isNonFinite(na) || isNonFinite(ut) || isNonFinite(nm) || isNonFinite(um) {
		return ErrNonFiniteValue
	}
	if ut < 0 || um < 0 {
		return ErrInvalidUncertainty
	}
	if math.Abs(nm-na) > ut+um+tol {
		return ErrTriangleViolation
	}

	return nil
}

// checkResult validates an operator result with a rounding allowance
// proportional to scale and tags failures with op.
func checkResult(op string, z UN, scale float64) (UN, error) {
	tol := roundoff * scale
	if isNonFinite(tol) {
		// operand budgets overflowed; finiteness of z is still checked below
		tol = 0
	}
	if err := Check(z, tol); err != nil {
		return UN{}, unErrorf(op, err)
	}

	return z, nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
