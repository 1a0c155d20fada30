package ssot

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("ssot: configuration file not found")

	// ErrInvalidConfig indicates malformed YAML, unknown keys or values that
	// fail validation.
	ErrInvalidConfig = errors.New("ssot: invalid configuration")
)

// invalidf wraps ErrInvalidConfig with a located reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
