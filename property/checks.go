package property

import (
	"math"

	"github.com/katalvlaran/unalgebra/classical"
	"github.com/katalvlaran/unalgebra/un"
)

func checkGeneratorValid(c Case) error {
	if err := un.Check(c.X, 0); err != nil {
		return violatef("generated %v: %v", c.X, err)
	}

	return nil
}

func checkTriangleClosure(c Case) error {
	s, err := un.Add(c.X, c.Y)
	if err != nil {
		return err
	}
	p, err := un.Mul(c.X, c.Y, un.DefaultLambda)
	if err != nil {
		return err
	}
	k, err := un.Catch(c.X)
	if err != nil {
		return err
	}
	for _, z := range []un.UN{s, p, un.Flip(c.X), k} {
		if err := un.Check(z, c.Tol.For(z)); err != nil {
			return violatef("%v: %v", z, err)
		}
	}

	return nil
}

func checkAddComponentwise(c Case) error {
	s, err := un.Add(c.X, c.Y)
	if err != nil {
		return err
	}
	na1, ut1, nm1, um1 := c.X.Components()
	na2, ut2, nm2, um2 := c.Y.Components()
	na, ut, nm, um := s.Components()
	if na != na1+na2 || ut != ut1+ut2 || nm != nm1+nm2 || um != um1+um2 {
		return violatef("sum %v is not componentwise", s)
	}

	return nil
}

func checkAddCommutative(c Case) error {
	a, err := un.Add(c.X, c.Y)
	if err != nil {
		return err
	}
	b, err := un.Add(c.Y, c.X)
	if err != nil {
		return err
	}
	if !a.Identical(b) {
		return violatef("x+y = %v, y+x = %v", a, b)
	}

	return nil
}

func checkMulCommutative(c Case) error {
	a, err := un.Mul(c.X, c.Y, un.DefaultLambda)
	if err != nil {
		return err
	}
	b, err := un.Mul(c.Y, c.X, un.DefaultLambda)
	if err != nil {
		return err
	}
	if !a.Identical(b) {
		return violatef("xy = %v, yx = %v", a, b)
	}

	return nil
}

func checkAddAssociative(c Case) error {
	xy, err := un.Add(c.X, c.Y)
	if err != nil {
		return err
	}
	left, err := un.Add(xy, c.Z)
	if err != nil {
		return err
	}
	yz, err := un.Add(c.Y, c.Z)
	if err != nil {
		return err
	}
	right, err := un.Add(c.X, yz)
	if err != nil {
		return err
	}
	bound := c.Tol.Bound(c.X.Budget() + c.Y.Budget() + c.Z.Budget())
	if !closeWithin(left, right, bound) {
		return violatef("(x+y)+z = %v, x+(y+z) = %v", left, right)
	}

	return nil
}

func checkMulAssociative(c Case) error {
	left, right, err := mulBothWays(c)
	if err != nil {
		return err
	}
	if !closeWithin(left, right, c.Tol.Bound(left.Budget())) {
		return violatef("(xy)z = %v, x(yz) = %v", left, right)
	}

	return nil
}

func mulBothWays(c Case) (left, right un.UN, err error) {
	xy, err := un.Mul(c.X, c.Y, un.DefaultLambda)
	if err != nil {
		return left, right, err
	}
	if left, err = un.Mul(xy, c.Z, un.DefaultLambda); err != nil {
		return left, right, err
	}
	yz, err := un.Mul(c.Y, c.Z, un.DefaultLambda)
	if err != nil {
		return left, right, err
	}
	right, err = un.Mul(c.X, yz, un.DefaultLambda)

	return left, right, err
}

func checkFlipInvolution(c Case) error {
	f := un.Flip(c.X)
	if back := un.Flip(f); !back.Identical(c.X) {
		return violatef("flip(flip(%v)) = %v", c.X, back)
	}
	if !c.Tol.Close(f.Budget(), c.X.Budget()) {
		return violatef("flip changed M: %g → %g", c.X.Budget(), f.Budget())
	}

	return nil
}

func checkCatchBudget(c Case) error {
	k, err := un.Catch(c.X)
	if err != nil {
		return err
	}
	if !c.Tol.Close(k.Budget(), c.X.Budget()) {
		return violatef("catch changed M: %g → %g", c.X.Budget(), k.Budget())
	}

	return nil
}

func checkBudgetDefinition(c Case) error {
	na, ut, nm, um := c.X.Components()
	if want := math.Abs(na) + ut + math.Abs(nm) + um; un.Budget(c.X) != want {
		return violatef("M(%v) = %g, want %g", c.X, un.Budget(c.X), want)
	}

	return nil
}

func checkBudgetNonnegative(c Case) error {
	if m := c.X.Budget(); !(m >= 0) {
		return violatef("M(%v) = %g", c.X, m)
	}

	return nil
}

func checkAddBudgetSubadditive(c Case) error {
	s, err := un.Add(c.X, c.Y)
	if err != nil {
		return err
	}
	sum := c.X.Budget() + c.Y.Budget()
	if s.Budget() > sum+c.Tol.Bound(sum) {
		return violatef("M(x+y) = %g > M(x)+M(y) = %g", s.Budget(), sum)
	}
	if sameSigns(c.X, c.Y) && !c.Tol.Close(s.Budget(), sum) {
		return violatef("signs agree but M(x+y) = %g ≠ %g", s.Budget(), sum)
	}

	return nil
}

// sameSigns reports whether the nominals of each tier share a sign.
func sameSigns(x, y un.UN) bool {
	na1, _, nm1, _ := x.Components()
	na2, _, nm2, _ := y.Components()

	return na1*na2 >= 0 && nm1*nm2 >= 0
}

func checkProjectConservativeAdd(c Case) error {
	s, err := un.Add(c.X, c.Y)
	if err != nil {
		return err
	}
	got := un.Project(s).U
	want := classical.Add(un.Project(c.X), un.Project(c.Y)).U
	if got < want-c.Tol.Bound(want) {
		return violatef("projected sum radius %g < classical %g", got, want)
	}

	return nil
}

func checkProjectConservativeMul(c Case) error {
	p, err := un.Mul(c.X, c.Y, un.DefaultLambda)
	if err != nil {
		return err
	}
	got := un.Project(p).U
	want := classical.Mul(un.Project(c.X), un.Project(c.Y)).U
	if got < want-c.Tol.Bound(want) {
		return violatef("projected product radius %g < classical %g", got, want)
	}

	return nil
}

func checkMulTightness(c Case) error {
	p, err := un.Mul(c.X, c.Y, un.DefaultLambda)
	if err != nil {
		return err
	}
	px, py := un.Project(c.X), un.Project(c.Y)
	u := un.Project(p).U
	w := classical.IntervalWidthMul(px, py)
	if 2*u < w-c.Tol.Bound(w) {
		return violatef("width %g does not cover interval width %g", 2*u, w)
	}
	hull := classical.HullRadiusMul(px, py)
	if u > (1+c.Slack)*hull+c.Tol.Bound(hull) {
		return violatef("radius %g exceeds hull radius %g by more than %g", u, hull, c.Slack)
	}

	return nil
}

func checkMulBudgetSubmultiplicative(c Case) error {
	p, err := un.Mul(c.X, c.Y, un.DefaultLambda)
	if err != nil {
		return err
	}
	bound := c.X.Budget() * c.Y.Budget()
	if p.Budget() > bound+c.Tol.Bound(bound) {
		return violatef("M(xy) = %g > M(x)·M(y) = %g", p.Budget(), bound)
	}

	return nil
}

// distribute returns x(y+z) and xy+xz.
func distribute(c Case) (left, right un.UN, err error) {
	yz, err := un.Add(c.Y, c.Z)
	if err != nil {
		return left, right, err
	}
	if left, err = un.Mul(c.X, yz, un.DefaultLambda); err != nil {
		return left, right, err
	}
	xy, err := un.Mul(c.X, c.Y, un.DefaultLambda)
	if err != nil {
		return left, right, err
	}
	xz, err := un.Mul(c.X, c.Z, un.DefaultLambda)
	if err != nil {
		return left, right, err
	}
	right, err = un.Add(xy, xz)

	return left, right, err
}

func checkSubdistributiveNominal(c Case) error {
	left, right, err := distribute(c)
	if err != nil {
		return err
	}
	bound := c.Tol.Bound(right.Budget())
	if math.Abs(left.Actual().N-right.Actual().N) > bound ||
		math.Abs(left.Measured().N-right.Measured().N) > bound {
		return violatef("x(y+z) = %v, xy+xz = %v", left, right)
	}

	return nil
}

func checkSubdistributiveUncertainty(c Case) error {
	left, right, err := distribute(c)
	if err != nil {
		return err
	}
	bound := c.Tol.Bound(right.Budget())
	if left.Actual().U > right.Actual().U+bound || left.Measured().U > right.Measured().U+bound {
		return violatef("x(y+z) = %v wider than xy+xz = %v", left, right)
	}

	return nil
}

func checkProjectKnownActual(c Case) error {
	k := un.ProjectKnownActual(c.X)
	slack := c.Tol.For(c.X)
	lo, hi := k.Interval()
	if na := c.X.Actual().N; na < lo-slack || na > hi+slack {
		return violatef("n_a = %g outside [%g, %g]", na, lo, hi)
	}
	if p := un.Project(c.X); c.X.Gap() <= c.X.Actual().U && k.U > p.U+slack {
		return violatef("known-actual radius %g > projected %g", k.U, p.U)
	}

	return nil
}

// closeWithin compares all four fields against one absolute bound.
func closeWithin(a, b un.UN, bound float64) bool {
	ana, aut, anm, aum := a.Components()
	bna, but, bnm, bum := b.Components()

	return math.Abs(ana-bna) <= bound && math.Abs(aut-but) <= bound &&
		math.Abs(anm-bnm) <= bound && math.Abs(aum-bum) <= bound
}
