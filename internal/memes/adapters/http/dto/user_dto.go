package dto

import (
	"github.com/google/uuid"

	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
)

// CreateUserRequest - административное создание пользователя с ролью.
type CreateUserRequest struct {
	RegisterRequest
	Role string `json:"role" validate:"required,oneof=ADMIN USER"`
}

// ToUserCreate переводит запрос во входные данные сценария.
func (r *CreateUserRequest) ToUserCreate() services.UserCreate {
	input := r.RegisterRequest.ToUserCreate()
	input.Role = values.Role(r.Role)
	return input
}

// UpdateUserRequest - полная замена данных пользователя. Пустой пароль оставляет прежний.
type UpdateUserRequest struct {
	Login      string  `json:"login" validate:"required,min=8,max=50"`
	Password   string  `json:"password,omitempty" validate:"omitempty,min=8,max=128"`
	Email      string  `json:"email" validate:"required,email,max=70"`
	FirstName  string  `json:"first_name" validate:"required,min=2,max=60"`
	SecondName *string `json:"second_name,omitempty" validate:"omitempty,min=2,max=60"`
}

// ToUserUpdate переводит запрос во входные данные сценария.
func (r *UpdateUserRequest) ToUserUpdate(id uuid.UUID) services.UserUpdate {
	return services.UserUpdate{
		ID:         id,
		Login:      r.Login,
		Password:   r.Password,
		Email:      r.Email,
		FirstName:  r.FirstName,
		SecondName: r.SecondName,
	}
}
