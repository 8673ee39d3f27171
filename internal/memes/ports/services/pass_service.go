package services

import "context"

// PasswordService хеширует и проверяет пароли. Для одного пароля и одной
// конфигурации хеш всегда одинаков.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	Verify(ctx context.Context, password, hash string) (bool, error)
}
