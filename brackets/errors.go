package brackets

import (
	"errors"
	"fmt"
)

var ErrInvalidPrediction = errors.New("invalid bracket prediction")

// ValidationError points at the game (slot key) and field that failed.
// Slot is empty for bracket-level problems such as the name.
type ValidationError struct {
	Slot   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Slot == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Slot, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidPrediction
}

func invalid(slot, field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Slot: slot, Field: field, Reason: fmt.Sprintf(format, args...)}
}
