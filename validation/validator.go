package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/scopekit/errors"
)

// Validator checks names and ids supplied at runtime: scope names passed to
// a host, request ids read from headers. Checks chain and collect every
// failure; Err reports them together.
type Validator struct {
	errors []FieldError
}

// FieldError is a failed check on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{}
}

func (v *Validator) add(field, message string) *Validator {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
	return v
}

// Errors returns the collected failures.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Err returns nil when every check passed, otherwise an INVALID_INPUT
// AppError listing each failed field.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	messages := make([]string, len(v.errors))
	for i, e := range v.errors {
		messages[i] = e.Field + ": " + e.Message
	}
	return errors.Validation(strings.Join(messages, "; ")).WithDetail("fields", v.errors)
}

// Required fails on a blank value.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		return v.add(field, "is required")
	}
	return v
}

// ScopeName fails on a non-empty value that is not a lowercase identifier.
func (v *Validator) ScopeName(field, value string) *Validator {
	if value != "" && !IsScopeName(value) {
		return v.add(field, "must be a lowercase identifier")
	}
	return v
}

// Unique fails when value is already in taken.
func (v *Validator) Unique(field, value string, taken []string) *Validator {
	if slices.Contains(taken, value) {
		return v.add(field, fmt.Sprintf("%q is already in use", value))
	}
	return v
}

// RequestID fails unless value is a UUID.
func (v *Validator) RequestID(field, value string) *Validator {
	if _, err := uuid.Parse(value); err != nil {
		return v.add(field, "must be a UUID")
	}
	return v
}
