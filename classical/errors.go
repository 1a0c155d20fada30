package classical

import "errors"

var (
	// ErrInvalidUncertainty indicates a negative radius.
	ErrInvalidUncertainty = errors.New("classical: uncertainty must be non-negative")

	// ErrNonFiniteValue indicates a NaN or ±Inf nominal or radius.
	ErrNonFiniteValue = errors.New("classical: NaN or Inf encountered")
)
