package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors the handler boundary maps to HTTP statuses.
var (
	// ErrNotFound means the referenced id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned for any login failure. It is
	// deliberately identical for an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrConflict means a restrict-delete rule blocked the operation:
	// referencing rows still exist.
	ErrConflict = errors.New("referenced by existing records")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries all field-level failures for one input shape.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// add appends a failure and returns the receiver for chaining.
func (e *ValidationError) add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// orNil returns nil when no failures were collected.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func invalidField(field, message string) error {
	return (&ValidationError{}).add(field, message)
}
