package values

import "github.com/google/uuid"

// Identifier - идентификатор сущности.
type Identifier struct {
	value uuid.UUID
}

// NewIdentifier оборачивает уже разобранный UUID. Разбор строки - задача вызывающего.
func NewIdentifier(raw uuid.UUID) (Identifier, error) {
	if raw == uuid.Nil {
		return Identifier{}, newValidationError("id", ErrInvalidFormat, 0)
	}
	return Identifier{value: raw}, nil
}

// Value возвращает UUID.
func (i Identifier) Value() uuid.UUID { return i.value }

// IsZero сообщает, что идентификатор не был создан конструктором.
func (i Identifier) IsZero() bool { return i.value == uuid.Nil }

func (i Identifier) String() string { return i.value.String() }
