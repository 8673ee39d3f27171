package services

import (
	"context"

	"memhub/internal/memes/domain/services"
)

// TokenService выдает и проверяет access и refresh токены с независимыми ключами и сроками.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, subject services.TokenSubject) (*services.IssuedToken, error)

	GenerateRefreshToken(ctx context.Context, subject services.TokenSubject) (*services.IssuedToken, error)

	// ParseAccessToken возвращает services.ErrTokenExpired или services.ErrTokenCorrupted.
	ParseAccessToken(ctx context.Context, token string) (*services.TokenClaims, error)

	ParseRefreshToken(ctx context.Context, token string) (*services.TokenClaims, error)
}
