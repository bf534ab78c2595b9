package domain

import "fmt"

// ValidationError describes a single field that failed validation when a
// record was constructed or merged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func nonNegative(field string, v int) error {
	if v < 0 {
		return invalid(field, "must be >= 0 (got %d)", v)
	}
	return nil
}
