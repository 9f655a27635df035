package render

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every InputError.
	ErrInvalidInput = errors.New("render: invalid input")
	// ErrUnknownRenderer is returned when a registry lookup misses.
	ErrUnknownRenderer = errors.New("render: renderer not found")
)

// ErrorKind classifies render failures.
type ErrorKind string

// KindInvalidInput marks data that does not have the shape a fragment needs.
const KindInvalidInput ErrorKind = "InvalidInput"

// InputError reports a malformed render context field.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("render: invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("render: invalid input %q: %s", e.Field, e.Reason)
}

// Kind returns KindInvalidInput.
func (e *InputError) Kind() ErrorKind {
	return KindInvalidInput
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
