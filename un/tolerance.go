package un

import "math"

// Tolerance is the numeric comparison policy: |a − b| ≤ Atol + Rtol·ref.
// It is the only configuration the algebra consumes besides λ.
type Tolerance struct {
	Atol float64
	Rtol float64
}

// DefaultTolerance returns {DefaultAtol, DefaultRtol}.
func DefaultTolerance() Tolerance {
	return Tolerance{Atol: DefaultAtol, Rtol: DefaultRtol}
}

// Validate returns ErrInvalidTolerance unless both parts are finite and ≥ 0.
func (t Tolerance) Validate() error {
	if !validTol(t.Atol) || !validTol(t.Rtol) {
		return ErrInvalidTolerance
	}

	return nil
}

// Bound returns Atol + Rtol·|ref|.
func (t Tolerance) Bound(ref float64) float64 {
	return t.Atol + t.Rtol*math.Abs(ref)
}

// Close reports |a − b| ≤ Bound(max(|a|, |b|)).
func (t Tolerance) Close(a, b float64) bool {
	return math.Abs(a-b) <= t.Bound(math.Max(math.Abs(a), math.Abs(b)))
}

// For returns the absolute tolerance appropriate for validating x:
// Bound(Budget(x)).
func (t Tolerance) For(x UN) float64 {
	return t.Bound(Budget(x))
}

func validTol(v float64) bool {
	return !isNonFinite(v) && v >= 0
}
