// Package values содержит самопроверяющиеся объекты-значения предметной области.
// Объект создается только конструктором, который либо возвращает корректное
// значение, либо *ValidationError.
package values

import (
	"errors"
	"fmt"
)

// Виды нарушений.
var (
	ErrValidation    = errors.New("validation failed")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrTooShort      = errors.New("value too short")
	ErrTooLong       = errors.New("value too long")
	ErrInvalidFormat = errors.New("invalid format")
)

// ValidationError описывает нарушенное правило объекта-значения.
// Совпадает через errors.Is и с ErrValidation, и со своим Kind.
type ValidationError struct {
	Field string
	Kind  error
	Limit int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrTooShort:
		return fmt.Sprintf("%s: %v (min %d characters)", e.Field, e.Kind, e.Limit)
	case ErrTooLong:
		return fmt.Sprintf("%s: %v (max %d characters)", e.Field, e.Kind, e.Limit)
	default:
		return fmt.Sprintf("%s: %v", e.Field, e.Kind)
	}
}

// Unwrap позволяет errors.Is находить и общий, и конкретный вид ошибки.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Kind}
}

func newValidationError(field string, kind error, limit int) *ValidationError {
	return &ValidationError{Field: field, Kind: kind, Limit: limit}
}
