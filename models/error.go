package models

import (
	"errors"
	"fmt"
)

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}

var (
	// ErrNotFound is returned when no document matches the given identifier
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when input passes the schema but a business rule rejects it
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned for missing, invalid or expired credentials
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError describes malformed, missing or out of range input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError for a field
func Invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
