package shared

import (
	"errors"
	"fmt"
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// ErrUniverseNotLoaded is returned when an unloaded universe is used for computation
var ErrUniverseNotLoaded = errors.New("universe is not loaded")

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Production errors

type InvalidLevelError struct {
	*DomainError
	Level int
}

func NewInvalidLevelError(level int) *InvalidLevelError {
	return &InvalidLevelError{
		DomainError: NewDomainError(fmt.Sprintf("invalid level %d: levels cannot be negative", level)),
		Level:       level,
	}
}

// Universe schema errors

// SchemaValidationError reports a universe field that is missing or has the wrong type
type SchemaValidationError struct {
	Field    string
	Expected string
	// Actual is empty when the field is missing
	Actual string
}

func (e *SchemaValidationError) Error() string {
	if e.Actual == "" {
		return fmt.Sprintf("universe schema: field %q is required (%s)", e.Field, e.Expected)
	}
	return fmt.Sprintf("universe schema: field %q must be %s, got %s", e.Field, e.Expected, e.Actual)
}

// Missing checks if the error reports an absent field
func (e *SchemaValidationError) Missing() bool {
	return e.Actual == ""
}

func NewMissingFieldError(field, expected string) *SchemaValidationError {
	return &SchemaValidationError{Field: field, Expected: expected}
}

func NewMistypedFieldError(field, expected, actual string) *SchemaValidationError {
	return &SchemaValidationError{Field: field, Expected: expected, Actual: actual}
}
