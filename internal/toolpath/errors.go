package toolpath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOverride matches an *OverrideError.
	ErrInvalidOverride = errors.New("invalid executable override")
	// ErrNotFound matches a *NotFoundError.
	ErrNotFound = errors.New("executable not found")
)

// OverrideError is returned when the override variable is set but its value
// is not a runnable executable. Resolution stops there.
type OverrideError struct {
	Name  string // executable name
	Var   string // override variable
	Value string // value the variable held
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("`%s` environment variable points to something that's not a valid executable", e.Var)
}

func (e *OverrideError) Is(target error) bool { return target == ErrInvalidOverride }

// NotFoundError is returned when no override is set and neither the bare name
// nor the fallback path validated.
type NotFoundError struct {
	Name string
	Var  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Failed to find `%s` executable. Make sure `%s` is in `$PATH`, or set `$%s` to point to a valid executable.",
		e.Name, e.Name, e.Var)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
