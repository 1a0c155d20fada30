// SPDX-License-Identifier: MIT

package un

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "un: ". Operators attach their name with
// unErrorf, so callers match with errors.Is and logs read "Mul: un: ...".
var (
	// ErrInvalidUncertainty indicates a negative u_t or u_m.
	ErrInvalidUncertainty = errors.New("un: uncertainty must be non-negative")

	// ErrTriangleViolation indicates |n_m − n_a| > u_t + u_m beyond tolerance.
	ErrTriangleViolation = errors.New("un: triangle violation")

	// ErrNonFiniteValue indicates NaN or ±Inf in any of the four fields,
	// including overflow produced by an operator.
	ErrNonFiniteValue = errors.New("un: NaN or Inf encountered")

	// ErrInvalidLambda indicates a negative or non-finite λ passed to Mul.
	ErrInvalidLambda = errors.New("un: lambda must be finite and non-negative")

	// ErrInvalidTolerance indicates a negative or non-finite tolerance.
	ErrInvalidTolerance = errors.New("un: tolerance must be finite and non-negative")

	// ErrNilPropagator indicates MulWith was called without a strategy.
	ErrNilPropagator = errors.New("un: nil propagator")
)

// Operation names used for error context.
const (
	opNew      = "New"
	opAdd      = "Add"
	opMul      = "Mul"
	opCatch    = "Catch"
	opCatchGap = "CatchGap"
)

// unErrorf attaches the operation name to a sentinel.
func unErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
