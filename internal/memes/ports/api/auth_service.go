package api

import (
	"context"

	"memhub/internal/memes/domain/services"
)

// AuthUseCase - регистрация, вход и работа с токенами.
type AuthUseCase interface {
	Register(ctx context.Context, input services.UserCreate) (*services.TokenPair, error)

	Login(ctx context.Context, login, password string) (*services.TokenPair, error)

	RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error)

	Logout(ctx context.Context, refreshToken string) error

	Authenticate(ctx context.Context, accessToken string) (*services.TokenClaims, error)
}
