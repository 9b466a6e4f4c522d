package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned when registering a name that is taken.
	ErrDuplicateName = errors.New("user already exists")

	// ErrOwnerNotFound is returned when an operation references a user that
	// was never registered.
	ErrOwnerNotFound = errors.New("user not found")

	// ErrTodoNotFound is returned when a todo does not exist under the given
	// owner. A todo owned by someone else reports the same error.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrStore wraps persistence failures that are not part of the taxonomy
	// above.
	ErrStore = errors.New("store failure")
)

// ValidationError reports an input field that failed its constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
