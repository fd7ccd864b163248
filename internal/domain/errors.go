package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every layer. Callers match them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// DomainError wraps a sentinel with context. Field is set for validation failures.
type DomainError struct {
	Base    error
	Message string
	Field   string
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s %s", e.Message, e.Base.Error())
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError reports that the named resource does not exist, e.g. "event not found".
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{Base: ErrNotFound, Message: resource}
}

// NewValidationError reports a rejected value for field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{Base: ErrInvalidInput, Message: message, Field: field}
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
