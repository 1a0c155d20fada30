package un_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unalgebra/classical"
	"github.com/katalvlaran/unalgebra/un"
)

// TestAdd_Scenario: ((1,0.1),(1.05,0.1)) ⊕ ((2,0.2),(1.9,0.05)) = ((3,0.3),(2.95,0.15)).
func TestAdd_Scenario(t *testing.T) {
	x := mustUN(t, 1.0, 0.1, 1.05, 0.1)
	y := mustUN(t, 2.0, 0.2, 1.9, 0.05)

	s := mustAdd(t, x, y)
	want, err := un.New(un.Tier{N: 3.0, U: 0.3}, un.Tier{N: 2.95, U: 0.15})
	require.NoError(t, err)
	assert.True(t, s.Close(want, tol), "got %v", s)
	assert.True(t, un.Validate(s, tol.For(s)), "0.05 ≤ 0.45")
}

// TestAdd_Overflow fails fast instead of returning ±Inf.
func TestAdd_Overflow(t *testing.T) {
	x := mustUN(t, 1e308, 0, 1e308, 0)
	_, err := un.Add(x, x)
	assert.ErrorIs(t, err, un.ErrNonFiniteValue)
	assert.Contains(t, err.Error(), "Add: ")
}

// TestAdd_Laws: componentwise, triangle-closed, commutative, associative,
// budget-subadditive.
func TestAdd_Laws(t *testing.T) {
	forTriples(t, seedProps, func(i int, x, y, z un.UN) {
		s := mustAdd(t, x, y)

		na1, ut1, nm1, um1 := x.Components()
		na2, ut2, nm2, um2 := y.Components()
		na, ut, nm, um := s.Components()
		if na != na1+na2 || ut != ut1+ut2 || nm != nm1+nm2 || um != um1+um2 {
			t.Fatalf("trial %d: add is not componentwise: %v", i, s)
		}

		if !un.Validate(s, tol.Bound(x.Budget()+y.Budget())) {
			t.Fatalf("trial %d: triangle not closed under add: %v", i, s)
		}

		if !s.Identical(mustAdd(t, y, x)) {
			t.Fatalf("trial %d: add not commutative", i)
		}

		left := mustAdd(t, s, z)
		right := mustAdd(t, x, mustAdd(t, y, z))
		ref := tol.Bound(x.Budget() + y.Budget() + z.Budget())
		if !closeWithin(left, right, ref) {
			t.Fatalf("trial %d: add not associative: %v vs %v", i, left, right)
		}

		if m := s.Budget(); m > x.Budget()+y.Budget()+ref {
			t.Fatalf("trial %d: budget not subadditive: %g > %g", i, m, x.Budget()+y.Budget())
		}
	})
}

// TestAdd_BoundaryOperands: sums of operands sitting exactly on the triangle
// boundary stay closed, conservative and subadditive.
func TestAdd_BoundaryOperands(t *testing.T) {
	forBoundary(t, seedProps, func(i int, x, y, z un.UN) {
		s := mustAdd(t, mustAdd(t, x, y), z)
		ref := x.Budget() + y.Budget() + z.Budget()

		if !un.Validate(s, tol.Bound(ref)) {
			t.Fatalf("trial %d: boundary sum %v invalid", i, s)
		}

		c := classical.Add(classical.Add(un.Project(x), un.Project(y)), un.Project(z)).U
		if u := un.Project(s).U; u < c-tol.Bound(c) {
			t.Fatalf("trial %d: projected radius %g below classical %g", i, u, c)
		}

		if m := s.Budget(); m > ref+tol.Bound(ref) {
			t.Fatalf("trial %d: budget not subadditive: %g > %g", i, m, ref)
		}

		if _, err := un.Catch(s); err != nil {
			t.Fatalf("trial %d: catch of boundary sum: %v", i, err)
		}
	})
}

// TestAdd_BudgetAdditiveWhenSignsAgree: with same-sign nominals per tier the
// budget is exactly additive (up to rounding).
func TestAdd_BudgetAdditiveWhenSignsAgree(t *testing.T) {
	x := mustUN(t, 1, 0.1, 1.05, 0.1)
	y := mustUN(t, 2, 0.2, 1.9, 0.05)
	s := mustAdd(t, x, y)
	assert.InDelta(t, x.Budget()+y.Budget(), s.Budget(), 1e-12)

	// Opposite signs: strictly subadditive.
	n := mustUN(t, -1, 0.1, -1.05, 0.1)
	d := mustAdd(t, x, n)
	assert.Less(t, d.Budget(), x.Budget()+n.Budget())
}

// TestMul_ExactValues checks the Tiered formula on dyadic operands.
func TestMul_ExactValues(t *testing.T) {
	x := mustUN(t, 2, 0.5, 2, 0.25)
	y := mustUN(t, 4, 1, 3, 0.5)

	p, err := un.Mul(x, y, 1)
	require.NoError(t, err)
	assert.Equal(t, un.Tier{N: 8, U: 4}, p.Actual(), "u_t' = 2·1 + 3·0.5 + 0.5·1")
	assert.Equal(t, un.Tier{N: 6, U: 2.375}, p.Measured(), "u_m' = 2·0.5 + 3·0.25 + 0.625")

	// λ = 1 reproduces the classical radius of the projected operands.
	c := classical.Mul(un.Project(x), un.Project(y))
	assert.Equal(t, c, un.Project(p))

	p0, err := un.Mul(x, y, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, p0.Actual().U)
	assert.Equal(t, 1.75, p0.Measured().U)

	p2, err := un.Mul(x, y, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, p2.Actual().U)
	assert.Equal(t, 3.0, p2.Measured().U)
}

// TestMul_LambdaWidens: the projected radius grows monotonically in λ.
func TestMul_LambdaWidens(t *testing.T) {
	forTriples(t, seedMeta, func(i int, x, y, _ un.UN) {
		p1 := mustMul(t, x, y)
		p3, err := un.Mul(x, y, 3)
		require.NoError(t, err)
		if un.Project(p3).U < un.Project(p1).U {
			t.Fatalf("trial %d: λ=3 narrower than λ=1", i)
		}
	})
}

// TestMul_InvalidLambda rejects negative and non-finite λ.
func TestMul_InvalidLambda(t *testing.T) {
	x := mustUN(t, 1, 0.1, 1.05, 0.1)
	for _, lam := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		_, err := un.Mul(x, x, lam)
		assert.ErrorIs(t, err, un.ErrInvalidLambda, "λ=%g", lam)
	}
}

// TestMul_FirstOrderCanBreakTriangle: at λ = 0 the linear bound may be
// narrower than the realised product gap; Mul reports it instead of clamping.
func TestMul_FirstOrderCanBreakTriangle(t *testing.T) {
	x := mustUN(t, 2, 0, 1, 1) // gap 1 = u_m, on the boundary

	_, err := un.Mul(x, x, 0)
	assert.ErrorIs(t, err, un.ErrTriangleViolation, "gap 3 > first-order radius 2")

	p, err := un.Mul(x, x, un.DefaultLambda)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Gap())
	assert.Equal(t, 3.0, un.Project(p).U, "λ=1 covers the gap exactly")
}

// TestMulWith_Envelope is triangle-closed even where Tiered λ=0 is not.
func TestMulWith_Envelope(t *testing.T) {
	x := mustUN(t, 2, 0, 1, 1)
	p, err := un.MulWith(un.Envelope{}, x, x, 0)
	require.NoError(t, err)
	assert.Equal(t, un.Tier{N: 4, U: 0}, p.Actual())
	assert.Equal(t, un.Tier{N: 1, U: 4}, p.Measured())

	forTriples(t, seedMeta, func(i int, x, y, _ un.UN) {
		if _, err := un.MulWith(un.Envelope{}, x, y, 0); err != nil {
			t.Fatalf("trial %d: envelope product invalid: %v", i, err)
		}
	})

	_, err = un.MulWith(nil, x, x, 1)
	assert.ErrorIs(t, err, un.ErrNilPropagator)
}

// TestMul_Laws: the λ=1 contracts over generated operands.
func TestMul_Laws(t *testing.T) {
	forTriples(t, seedProps, func(i int, x, y, _ un.UN) {
		p := mustMul(t, x, y)
		px, py := un.Project(x), un.Project(y)
		u := un.Project(p).U

		// triangle closure
		if !un.Validate(p, tol.For(p)) {
			t.Fatalf("trial %d: product %v invalid", i, p)
		}

		// exact commutativity
		if !p.Identical(mustMul(t, y, x)) {
			t.Fatalf("trial %d: mul not commutative", i)
		}

		// conservativity against the classical oracle
		c := classical.Mul(px, py).U
		if u < c-tol.Bound(c) {
			t.Fatalf("trial %d: projected radius %g below classical %g", i, u, c)
		}

		// tightness: covers the interval product, within the slack of its hull
		w := classical.IntervalWidthMul(px, py)
		hull := classical.HullRadiusMul(px, py)
		if 2*u < w-tol.Bound(w) {
			t.Fatalf("trial %d: width %g below interval width %g", i, 2*u, w)
		}
		if u > (1+un.TightnessSlack)*hull+tol.Bound(hull) {
			t.Fatalf("trial %d: radius %g exceeds hull %g beyond slack", i, u, hull)
		}

		// sub-multiplicative budget
		bound := x.Budget() * y.Budget()
		if p.Budget() > bound+tol.Bound(bound) {
			t.Fatalf("trial %d: M(xy)=%g > M(x)M(y)=%g", i, p.Budget(), bound)
		}
	})
}

// TestMul_BoundaryOperands: λ=1 products of boundary operands, single and
// chained, stay closed, conservative and sub-multiplicative. Catch of each
// product keeps its budget.
func TestMul_BoundaryOperands(t *testing.T) {
	forBoundary(t, seedMeta, func(i int, x, y, z un.UN) {
		p := mustMul(t, x, y)
		if !un.Validate(p, tol.For(p)) {
			t.Fatalf("trial %d: boundary product %v invalid", i, p)
		}

		c := classical.Mul(un.Project(x), un.Project(y)).U
		if u := un.Project(p).U; u < c-tol.Bound(c) {
			t.Fatalf("trial %d: projected radius %g below classical %g", i, u, c)
		}

		bound := x.Budget() * y.Budget()
		if p.Budget() > bound+tol.Bound(bound) {
			t.Fatalf("trial %d: M(xy)=%g > M(x)M(y)=%g", i, p.Budget(), bound)
		}

		q, err := un.Mul(p, z, un.DefaultLambda)
		if err != nil {
			t.Fatalf("trial %d: chained boundary product: %v", i, err)
		}
		bound *= z.Budget()
		if q.Budget() > bound+tol.Bound(bound) {
			t.Fatalf("trial %d: M(xyz)=%g > M(x)M(y)M(z)=%g", i, q.Budget(), bound)
		}

		k := mustCatch(t, p)
		if !tol.Close(k.Budget(), p.Budget()) {
			t.Fatalf("trial %d: catch moved budget %g -> %g", i, p.Budget(), k.Budget())
		}
	})
}

// TestMul_AssociativeDrift: (xy)z and x(yz) agree up to rounding, measured
// against the budget of the result.
func TestMul_AssociativeDrift(t *testing.T) {
	worst := 0.0
	forTriples(t, seedProps, func(i int, x, y, z un.UN) {
		left := mustMul(t, mustMul(t, x, y), z)
		right := mustMul(t, x, mustMul(t, y, z))

		ref := left.Budget()
		lna, lut, lnm, lum := left.Components()
		rna, rut, rnm, rum := right.Components()
		for _, d := range []float64{lna - rna, lut - rut, lnm - rnm, lum - rum} {
			worst = math.Max(worst, math.Abs(d)/ref)
		}
		if !closeWithin(left, right, tol.Bound(ref)) {
			t.Fatalf("trial %d: associativity drift beyond tolerance: %v vs %v", i, left, right)
		}
	})
	t.Logf("worst relative drift: %.3g", worst)
}

// TestMul_SubDistributive: x(y+z) has equal nominals and no wider radii than
// xy + xz, tier by tier.
func TestMul_SubDistributive(t *testing.T) {
	forTriples(t, seedProps, func(i int, x, y, z un.UN) {
		left := mustMul(t, x, mustAdd(t, y, z))
		right := mustAdd(t, mustMul(t, x, y), mustMul(t, x, z))
		ref := tol.Bound(right.Budget())

		lna, lut, lnm, lum := left.Components()
		rna, rut, rnm, rum := right.Components()
		if math.Abs(lna-rna) > ref || math.Abs(lnm-rnm) > ref {
			t.Fatalf("trial %d: nominals differ: %v vs %v", i, left, right)
		}
		if lut > rut+ref || lum > rum+ref {
			t.Fatalf("trial %d: left radii wider: %v vs %v", i, left, right)
		}
	})
}

// TestMixed_NotAssociative: (x⊕y)⊗z and x⊕(y⊗z) are different operations.
func TestMixed_NotAssociative(t *testing.T) {
	x := mustUN(t, 1, 0.1, 1.05, 0.1)
	y := mustUN(t, 2, 0.2, 1.9, 0.05)
	z := mustUN(t, 3, 0.3, 3, 0.1)

	left := mustMul(t, mustAdd(t, x, y), z)
	right := mustAdd(t, x, mustMul(t, y, z))
	assert.False(t, left.Close(right, tol), "(x⊕y)⊗z = %v, x⊕(y⊗z) = %v", left, right)
}

// closeWithin compares all four fields against one absolute bound.
func closeWithin(a, b un.UN, bound float64) bool {
	ana, aut, anm, aum := a.Components()
	bna, but, bnm, bum := b.Components()

	return math.Abs(ana-bna) <= bound && math.Abs(aut-but) <= bound &&
		math.Abs(anm-bnm) <= bound && math.Abs(aum-bum) <= bound
}
