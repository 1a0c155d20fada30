package property

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProperty indicates a name that is not in the catalogue.
	ErrUnknownProperty = errors.New("property: unknown property")

	// ErrNoTrials indicates a run with nothing to do: every selected
	// property is disabled, or the selection is empty.
	ErrNoTrials = errors.New("property: nothing to run")
)

// violatef describes one failed trial.
func violatef(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
