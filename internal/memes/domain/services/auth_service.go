package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"memhub/internal/memes/domain/values"
)

// Ошибки аутентификации.
var (
	ErrWrongPassword  = errors.New("wrong password")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenCorrupted = errors.New("token corrupted")
	ErrTokenRevoked   = errors.New("token revoked")
)

// TokenTypeBearer - тип access токена.
const TokenTypeBearer = "Bearer"

// TokenPair - выданные access и refresh токены.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	TokenType        string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenSubject - данные, которые подписываются в токен.
type TokenSubject struct {
	UserID uuid.UUID
	Role   values.Role
}

// IssuedToken - подписанный токен и его идентификатор.
type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// TokenClaims - проверенное содержимое токена.
type TokenClaims struct {
	UserID    uuid.UUID
	Role      values.Role
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin сообщает, что токен выдан администратору.
func (c *TokenClaims) IsAdmin() bool {
	return c != nil && c.Role == values.RoleAdmin
}
