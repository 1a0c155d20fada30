// SPDX-License-Identifier: MIT

package un

import "math"

// Add returns the componentwise sum of all four fields.
//
// Triangle closure follows from the triangle inequality of |·|:
//
//	|(nm1+nm2) − (na1+na2)| ≤ |nm1−na1| + |nm2−na2| ≤ (ut1+um1) + (ut2+um2)
//
// Add is exactly commutative and associative up to rounding. Budget is
// subadditive: M(x+y) ≤ M(x) + M(y), with equality when the nominals of each
// tier share a sign.
//
// Errors: ErrNonFiniteValue on overflow.
// Complexity: O(1).
func Add(x, y UN) (UN, error) {
	z := UN{
		actual: Tier{
			N: x.actual.N + y.actual.N,
			U: x.actual.U + y.actual.U,
		},
		measured: Tier{
			N: x.measured.N + y.measured.N,
			U: x.measured.U + y.measured.U,
		},
	}

	return checkResult(opAdd, z, Budget(x)+Budget(y))
}

// Mul multiplies x and y with the default Tiered propagation.
// λ ≥ 0 scales the second-order cross term; DefaultLambda (1.0) is the
// calibration point, λ = 0 is first-order propagation.
//
// Errors:
//   - ErrInvalidLambda for λ < 0, NaN or ±Inf.
//   - ErrTriangleViolation when λ < 1 narrows the radius below the realised
//     product gap |nm1·nm2 − na1·na2|. At λ ≥ 1 this cannot happen. On
//     generator-drawn pairs it hits roughly 2% of products at λ = 0 and
//     0.3% at λ = 0.5. Callers that need first-order radii without failures
//     should use MulWith(Envelope{}, x, y, 0).
//   - ErrNonFiniteValue on overflow.
func Mul(x, y UN, lam float64) (UN, error) {
	return MulWith(Tiered{}, x, y, lam)
}

// MulWith multiplies x and y using p for nominal and radius propagation and
// validates the result. Add, Flip, Catch and Project are independent of p.
func MulWith(p Propagator, x, y UN, lam float64) (UN, error) {
	if p == nil {
		return UN{}, unErrorf(opMul, ErrNilPropagator)
	}
	if isNonFinite(lam) || lam < 0 {
		return UN{}, unErrorf(opMul, ErrInvalidLambda)
	}

	actual, measured := p.Propagate(x, y, lam)
	z := UN{actual: actual, measured: measured}

	return checkResult(opMul, z, math.Max(Budget(x)*Budget(y), Budget(z)))
}
