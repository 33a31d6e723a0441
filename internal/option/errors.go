package option

import (
	"errors"
	"fmt"
)

// Errors returned by option resolution.
var (
	// ErrTypeMismatch indicates a stored value's shape disagrees with the
	// requested type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// TypeError is returned when a stored value's shape disagrees with the
// requested type. The one permitted widening is requesting a float
// against a stored int.
type TypeError struct {
	// Display names the option, e.g. "[GLOBAL] foo".
	Display string
	// Expected is the requested shape name.
	Expected string
	// Actual is the stored shape name.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Display, e.Expected, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
