package entity

import (
	"fmt"
	"strings"
)

// ValidationError represents a single field-level validation failure.
// It implements the error interface and provides context about which field
// failed validation.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Reason)
}

// Violations collects every validation failure observed for one request.
// All provided-but-invalid fields are reported together rather than stopping
// at the first failure.
type Violations []ValidationError

// Error joins all violations into one message, implementing the error interface.
func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, ve := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", ve.Field, ve.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
