package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrConfiguration marks a badge definition that can never be completed.
	ErrConfiguration = errors.New("badge configuration error")
	// ErrFetch marks a failure to load statistics, the catalog or the earned set.
	ErrFetch = errors.New("fetch error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ConfigurationError reports a badge whose threshold is not positive.
type ConfigurationError struct {
	BadgeID   string
	Threshold int64
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("badge %q: threshold must be > 0 (got %d)", e.BadgeID, e.Threshold)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// FetchError wraps a failed read of one of the badge engine inputs.
type FetchError struct {
	What string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.What, e.Err)
}

// Unwrap exposes both ErrFetch and the underlying cause to errors.Is.
func (e *FetchError) Unwrap() []error { return []error{ErrFetch, e.Err} }
