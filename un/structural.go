package un

import "math"

// Flip exchanges the tiers: the measured tier becomes actual and vice versa.
//
// Flip is an exact involution (Flip(Flip(x)) is bitwise x), preserves the
// triangle invariant (|n_m − n_a| and u_t + u_m are symmetric) and preserves
// Budget (same four terms, reordered; equal up to summation order).
func Flip(x UN) UN {
	return UN{actual: x.measured, measured: x.actual}
}

// Catch is the observation operator: it withdraws the actual-tier claim,
// collapsing it to (0, 0), and folds its mass into the measured radius:
//
//	Catch(((n_a, u_t), (n_m, u_m))) = ((0, 0), (n_m, u_t + u_m + |n_a|))
//
// Budget is preserved and the triangle holds because
// |n_m| ≤ |n_a| + |n_m − n_a| ≤ |n_a| + u_t + u_m.
//
// Errors: ErrNonFiniteValue on overflow.
func Catch(x UN) (UN, error) {
	z := UN{
		measured: Tier{
			N: x.measured.N,
			U: x.actual.U + x.measured.U + math.Abs(x.actual.N),
		},
	}

	return checkResult(opCatch, z, Budget(x))
}

// CatchGap is the gap-based variant of Catch:
//
//	((0, 0), (n_m, |n_m − n_a| + u_t + u_m))
//
// It does not preserve Budget in general, and it fails with
// ErrTriangleViolation whenever |n_m| > |n_m − n_a| + u_t + u_m (for example
// any x whose tiers agree on a large nominal). Kept for comparison with Catch.
func CatchGap(x UN) (UN, error) {
	z := UN{
		measured: Tier{
			N: x.measured.N,
			U: x.Gap() + x.actual.U + x.measured.U,
		},
	}

	return checkResult(opCatchGap, z, Budget(x))
}
