package values

import (
	"regexp"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Email - адрес электронной почты.
type Email struct {
	value string
}

// NewEmail проверяет длину (не более 70 символов), затем формат.
func NewEmail(raw string) (Email, error) {
	if !utf8.ValidString(raw) {
		return Email{}, newValidationError("email", ErrTypeMismatch, 0)
	}
	if utf8.RuneCountInString(raw) > EmailMaxLength {
		return Email{}, newValidationError("email", ErrTooLong, EmailMaxLength)
	}
	if !emailPattern.MatchString(raw) {
		return Email{}, newValidationError("email", ErrInvalidFormat, 0)
	}
	return Email{value: raw}, nil
}

// Value возвращает адрес.
func (e Email) Value() string { return e.value }

func (e Email) String() string { return e.value }

// IsZero сообщает, что адрес не был создан конструктором.
func (e Email) IsZero() bool { return e.value == "" }
