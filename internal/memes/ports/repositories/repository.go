// Package repositories описывает порты хранения сущностей и изображений.
package repositories

import (
	"context"
	"errors"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/values"
)

// Ошибки хранилища, независимые от технологии.
var (
	ErrEntityExists   = errors.New("entity already exists")
	ErrEntityNotFound = errors.New("entity not found")
)

// Repository - CRUD контракт для сущности E.
type Repository[E entities.Entity] interface {
	// Add сохраняет новую сущность. Нарушение уникальности - ErrEntityExists.
	Add(ctx context.Context, entity E) (E, error)

	// Update заменяет запись с тем же идентификатором. ErrEntityExists при нарушении
	// уникальности, ErrEntityNotFound, если записи нет.
	Update(ctx context.Context, entity E) (E, error)

	// GetByID возвращает нулевое значение E без ошибки, если записи нет.
	GetByID(ctx context.Context, id values.Identifier) (E, error)

	GetAll(ctx context.Context) ([]E, error)

	// DeleteByID удаляет запись. ErrEntityNotFound, если записи нет.
	DeleteByID(ctx context.Context, id values.Identifier) error
}
