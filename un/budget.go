package un

import "math"

// Budget returns the epistemic budget M(x) = |n_a| + u_t + |n_m| + u_m.
//
// M is derived, never stored, and nonnegative for every valid x. Flip and
// Catch preserve it; Mul at λ = 1 is sub-multiplicative in it.
func Budget(x UN) float64 {
	return math.Abs(x.actual.N) + x.actual.U + math.Abs(x.measured.N) + x.measured.U
}
