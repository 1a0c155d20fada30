package un

import "github.com/katalvlaran/unalgebra/classical"

// Project collapses x to the classical pair (n_m, u_t + u_m), ignoring any
// correlation between tiers. For Add and Mul (λ ≥ 1) the projected width of
// the result never falls below the classical result on projected operands.
func Project(x UN) classical.Number {
	return classical.Number{N: x.measured.N, U: x.actual.U + x.measured.U}
}

// ProjectKnownActual collapses x once the actual value is known:
// (n_m, |n_m − n_a| + u_m). The realised gap replaces u_t: the result is no
// wider than Project(x) whenever the gap is within u_t, and its interval
// always contains n_a.
func ProjectKnownActual(x UN) classical.Number {
	return classical.Number{N: x.measured.N, U: x.Gap() + x.measured.U}
}
