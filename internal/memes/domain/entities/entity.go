// Package entities содержит сущности предметной области. Сущности неизменяемы:
// обновление строит новую сущность с тем же идентификатором.
package entities

import (
	"errors"
	"fmt"

	"memhub/internal/memes/domain/values"
)

// ErrUnvalidatedValue возвращается, когда сущность собирают из нулевого
// объекта-значения, минуя его конструктор.
var ErrUnvalidatedValue = errors.New("value was not created by its constructor")

func unvalidated(entity, field string) error {
	return fmt.Errorf("%s %s: %w", entity, field, ErrUnvalidatedValue)
}

// Entity - сущность с идентичностью по идентификатору.
type Entity interface {
	ID() values.Identifier
}
