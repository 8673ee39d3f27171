// Package redis реализует порты поверх Redis: список отозванных токенов и хранилище изображений.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"memhub/internal/memes/ports/repositories"
	"memhub/pkg/logger"
)

const (
	revokedKeyPrefix = "memhub:revoked:"

	msgTokenRevoked       = "token revoked"
	msgTokenAlreadyStale  = "token already expired, nothing to revoke"
	msgTokenRevokedBefore = "token was revoked before"

	errCtxRevoke    = "revoking token"
	errCtxIsRevoked = "checking token revocation"
)

// TokenDenylist хранит идентификаторы отозванных токенов с TTL до их истечения.
type TokenDenylist struct {
	client redis.Cmdable
	now    func() time.Time
}

// NewTokenDenylist создает список отозванных токенов.
func NewTokenDenylist(client redis.Cmdable) *TokenDenylist {
	return &TokenDenylist{client: client, now: time.Now}
}

// Revoke помечает токен отозванным до expiresAt через SET NX.
// Из нескольких одновременных вызовов для одного токена true получает только один.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "Revoke"), zap.String("token_id", tokenID))

	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		log.Debug(ctx, msgTokenAlreadyStale)
		return false, nil
	}

	claimed, err := d.client.SetNX(ctx, revokedKeyPrefix+tokenID, expiresAt.Unix(), ttl).Result()
	if err != nil {
		log.Error(ctx, errCtxRevoke, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxRevoke, err)
	}
	if !claimed {
		log.Debug(ctx, msgTokenRevokedBefore)
		return false, nil
	}

	log.Debug(ctx, msgTokenRevoked, zap.Duration("ttl", ttl))
	return true, nil
}

// IsRevoked сообщает, отозван ли токен.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		logger.Log(ctx).Error(ctx, errCtxIsRevoked, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxIsRevoked, err)
	}
	return n > 0, nil
}

var _ repositories.TokenDenylist = (*TokenDenylist)(nil)
