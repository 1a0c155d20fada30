package classical

import "math"

// Add sums nominals and radii componentwise.
func Add(x, y Number) Number {
	return Number{N: x.N + y.N, U: x.U + y.U}
}

// Mul multiplies nominals and propagates the radius as
// |nx|·uy + |ny|·ux + ux·uy.
//
// The cross term makes the radius exact (not merely first-order) for
// symmetric bounded intervals: it is the hull radius around nx·ny.
func Mul(x, y Number) Number {
	return Number{
		N: x.N * y.N,
		U: math.Abs(x.N)*y.U + math.Abs(y.N)*x.U + x.U*y.U,
	}
}

// IntervalWidthMul returns max − min over the four corner products of
// [nx−ux, nx+ux] × [ny−uy, ny+uy].
func IntervalWidthMul(x, y Number) float64 {
	lo, hi := cornerRange(x, y)

	return hi - lo
}

// HullRadiusMul returns the largest distance from nx·ny to a corner product,
// i.e. the smallest radius r such that [nx·ny − r, nx·ny + r] encloses the
// interval product.
func HullRadiusMul(x, y Number) float64 {
	lo, hi := cornerRange(x, y)
	c := x.N * y.N

	return math.Max(hi-c, c-lo)
}

// cornerRange evaluates the four corner products and returns their min and max.
func cornerRange(x, y Number) (lo, hi float64) {
	a, b := x.Interval()
	c, d := y.Interval()
	p := [4]float64{a * c, a * d, b * c, b * d}

	lo, hi = p[0], p[0]
	for _, v := range p[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}
