package api

import (
	"context"

	"github.com/google/uuid"

	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
)

// UserUseCase - управление пользователями.
type UserUseCase interface {
	CreateUser(ctx context.Context, input services.UserCreate) (*services.UserRead, error)

	GetUserByID(ctx context.Context, id uuid.UUID) (*services.UserRead, error)

	GetUserByLogin(ctx context.Context, login string) (*services.UserRead, error)

	GetAllUsers(ctx context.Context) ([]*services.UserRead, error)

	GetUsersByRole(ctx context.Context, role values.Role) ([]*services.UserRead, error)

	UpdateUser(ctx context.Context, input services.UserUpdate) (*services.UserRead, error)

	DeleteUserByID(ctx context.Context, id uuid.UUID) error
}
