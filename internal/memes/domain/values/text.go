package values

import "unicode/utf8"

// Границы длины в символах.
const (
	TextMinLength  = 5
	TextMaxLength  = 500
	LoginMinLength = 8
	LoginMaxLength = 50
	NameMinLength  = 2
	NameMaxLength  = 60
	EmailMaxLength = 70
)

// checkLength проверяет, что s - корректный UTF-8 и его длина в символах лежит в [minLen, maxLen].
func checkLength(field, s string, minLen, maxLen int) error {
	if !utf8.ValidString(s) {
		return newValidationError(field, ErrTypeMismatch, 0)
	}
	n := utf8.RuneCountInString(s)
	if n < minLen {
		return newValidationError(field, ErrTooShort, minLen)
	}
	if n > maxLen {
		return newValidationError(field, ErrTooLong, maxLen)
	}
	return nil
}

// Text - текст мема.
type Text struct {
	value string
}

// NewText создает Text длиной от 5 до 500 символов.
func NewText(raw string) (Text, error) {
	if err := checkLength("text", raw, TextMinLength, TextMaxLength); err != nil {
		return Text{}, err
	}
	return Text{value: raw}, nil
}

// Value возвращает исходную строку.
func (t Text) Value() string { return t.value }

func (t Text) String() string { return t.value }

// IsZero сообщает, что текст не был создан конструктором.
func (t Text) IsZero() bool { return t.value == "" }
