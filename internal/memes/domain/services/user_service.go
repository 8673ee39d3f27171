package services

import (
	"errors"

	"github.com/google/uuid"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/values"
)

// Ошибки домена пользователей.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrAccessDenied = errors.New("access denied")
)

// UserRead - представление пользователя без хеша пароля.
type UserRead struct {
	ID         uuid.UUID   `json:"id"`
	Login      string      `json:"login"`
	Email      string      `json:"email"`
	FirstName  string      `json:"first_name"`
	SecondName *string     `json:"second_name"`
	Role       values.Role `json:"role"`
}

// NewUserRead строит представление из сущности.
func NewUserRead(u *entities.User) *UserRead {
	return &UserRead{
		ID:         u.ID().Value(),
		Login:      u.Login().Value(),
		Email:      u.Email().Value(),
		FirstName:  u.Name().First(),
		SecondName: u.Name().SecondPtr(),
		Role:       u.Role(),
	}
}

// UserCreate - данные нового пользователя. Role используется только административным созданием.
type UserCreate struct {
	Login      string
	Password   string
	Email      string
	FirstName  string
	SecondName *string
	Role       values.Role
}

// UserUpdate - данные полной замены пользователя. Пустой Password оставляет прежний хеш.
type UserUpdate struct {
	ID         uuid.UUID
	Login      string
	Password   string
	Email      string
	FirstName  string
	SecondName *string
}
