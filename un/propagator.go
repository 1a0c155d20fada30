// SPDX-License-Identifier: MIT

package un

import "math"

// Propagator is the multiplication strategy: given two values and λ it
// produces the nominal and radius of both tiers of the product.
//
// Implementations must be pure. MulWith validates whatever they return.
type Propagator interface {
	Propagate(x, y UN, lam float64) (actual, measured Tier)
}

var (
	_ Propagator = Tiered{}
	_ Propagator = Envelope{}
)

// Tiered is the default propagation model.
//
// With a_i = |n_m,i|, t_i = u_t,i, m_i = u_m,i:
//
//	u_t' = a1·t2 + a2·t1 + λ·t1·t2
//	u_m' = a1·m2 + a2·m1 + λ·(m1·m2 + t1·m2 + m1·t2)
//
// so the projected radius is u_t' + u_m' = a1·U2 + a2·U1 + λ·U1·U2 with
// U_i = t_i + m_i. At λ = 1 that equals the classical radius of the projected
// operands, which is also the hull radius around n_m1·n_m2: conservative and
// tight at once.
//
// Properties at λ = 1:
//   - u_t' = (a1+t1)(a2+t2) − a1·a2, and u_t'+u_m' has the same shape in U,
//     so both tiers are associative in exact arithmetic.
//   - Each tier is linear in y except through |n_m|, which is subadditive,
//     hence x·(y+z) ≤ x·y + x·z per tier.
//   - M(x·y) ≤ M(x)·M(y): every term above appears in the expansion of the
//     budget product.
//
// Summation order is symmetric in (x, y) and products are rounded before
// they are summed, so Mul(x,y) and Mul(y,x) are bitwise identical.
type Tiered struct{}

// Propagate implements Propagator.
func (Tiered) Propagate(x, y UN, lam float64) (actual, measured Tier) {
	a1, a2 := math.Abs(x.measured.N), math.Abs(y.measured.N)
	t1, t2 := x.actual.U, y.actual.U
	m1, m2 := x.measured.U, y.measured.U

	// explicit float64 conversions keep the products from being fused
	linT := float64(a1*t2) + float64(a2*t1)
	linM := float64(a1*m2) + float64(a2*m1)
	crossT := t1 * t2
	crossM := float64(m1*m2) + (float64(t1*m2) + float64(m1*t2))

	actual = Tier{N: x.actual.N * y.actual.N, U: linT + float64(lam*crossT)}
	measured = Tier{N: x.measured.N * y.measured.N, U: linM + float64(lam*crossM)}

	return actual, measured
}

// Envelope is a first-order model on the tier envelope e_i = max(|n_a,i|, |n_m,i|):
//
//	u_t' = e1·t2 + e2·t1
//	u_m' = e1·m2 + e2·m1
//
// It ignores λ. Because nm1·nm2 − na1·na2 = nm1(nm2−na2) + na2(nm1−na1), the
// product gap is at most e1·U2 + e2·U1, so the result is always
// triangle-closed, but it omits the second-order term and is not conservative
// against the classical oracle when both radii are large.
type Envelope struct{}

// Propagate implements Propagator.
func (Envelope) Propagate(x, y UN, _ float64) (actual, measured Tier) {
	e1 := math.Max(math.Abs(x.actual.N), math.Abs(x.measured.N))
	e2 := math.Max(math.Abs(y.actual.N), math.Abs(y.measured.N))

	actual = Tier{
		N: x.actual.N * y.actual.N,
		U: float64(e1*y.actual.U) + float64(e2*x.actual.U),
	}
	measured = Tier{
		N: x.measured.N * y.measured.N,
		U: float64(e1*y.measured.U) + float64(e2*x.measured.U),
	}

	return actual, measured
}
