package model

import "fmt"

// ValidationError describes a rejected field value at construction time.
// Constructors return it instead of producing a partially built entity.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
