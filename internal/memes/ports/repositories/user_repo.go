package repositories

import (
	"context"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/values"
)

// UserRepository хранит пользователей.
type UserRepository interface {
	Repository[*entities.User]

	// GetByLogin возвращает nil без ошибки, если пользователя нет.
	GetByLogin(ctx context.Context, login values.Login) (*entities.User, error)

	GetByRole(ctx context.Context, role values.Role) ([]*entities.User, error)
}
