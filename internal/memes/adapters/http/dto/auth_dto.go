package dto

import (
	"time"

	"memhub/internal/memes/domain/services"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Login      string  `json:"login" validate:"required,min=8,max=50"`
	Password   string  `json:"password" validate:"required,min=8,max=128"`
	Email      string  `json:"email" validate:"required,email,max=70"`
	FirstName  string  `json:"first_name" validate:"required,min=2,max=60"`
	SecondName *string `json:"second_name,omitempty" validate:"omitempty,min=2,max=60"`
}

// ToUserCreate переводит запрос во входные данные сценария.
func (r *RegisterRequest) ToUserCreate() services.UserCreate {
	return services.UserCreate{
		Login:      r.Login,
		Password:   r.Password,
		Email:      r.Email,
		FirstName:  r.FirstName,
		SecondName: r.SecondName,
	}
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse - access токен. Refresh токен передается в httponly cookie.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// NewTokenResponse строит ответ из пары токенов.
func NewTokenResponse(pair *services.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken: pair.AccessToken,
		TokenType:   pair.TokenType,
		ExpiresAt:   pair.AccessExpiresAt,
	}
}
