package app

import (
	"fmt"

	"memhub/internal/memes/domain/services"
)

// AssertIsAdmin возвращает services.ErrAccessDenied, если токен выдан не администратору.
func AssertIsAdmin(claims *services.TokenClaims) error {
	if !claims.IsAdmin() {
		return fmt.Errorf("admin role required: %w", services.ErrAccessDenied)
	}
	return nil
}
