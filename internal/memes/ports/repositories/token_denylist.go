package repositories

import (
	"context"
	"time"
)

// TokenDenylist хранит идентификаторы отозванных токенов до истечения их срока.
type TokenDenylist interface {
	// Revoke атомарно отзывает токен. false означает, что токен уже был отозван
	// или истек, и вызывающий не должен выдавать по нему новые токены.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error)

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
