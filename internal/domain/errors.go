package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput базовая ошибка валидации входных данных
var ErrInvalidInput = errors.New("invalid input")

// ValidationError describes which field was rejected and why
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError is a shorthand constructor
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
