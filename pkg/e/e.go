package e

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks an entity that does not exist for the given key.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrValidation marks a rejected input or a masked failure of a mutating operation.
	ErrValidation = errors.New("validation failed")
)

// Error is a domain error carrying a caller-facing message. It unwraps to its kind,
// so callers match it with errors.Is(err, e.ErrNotFound) and friends.
type Error struct {
	kind error
	msg  string
}

func (err *Error) Error() string {
	return err.msg
}

func (err *Error) Unwrap() error {
	return err.kind
}

// NotFound builds an ErrNotFound error.
func NotFound(format string, args ...any) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Conflict builds an ErrConflict error.
func Conflict(format string, args ...any) error {
	return &Error{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// Validation builds an ErrValidation error.
func Validation(format string, args ...any) error {
	return &Error{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// Wrap adds context to err while keeping it matchable.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
