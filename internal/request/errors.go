package request

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks operator input that failed a grammar check.
// The CLI recovers from it by prompting again.
var ErrInvalidInput = errors.New("invalid input")

// InvalidError describes which field was rejected and why.
type InvalidError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match any InvalidError.
func (e *InvalidError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, value, reason string) error {
	return &InvalidError{Field: field, Value: value, Reason: reason}
}
