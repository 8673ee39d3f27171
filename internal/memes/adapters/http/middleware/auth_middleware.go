package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"memhub/internal/memes/adapters/http/response"
	"memhub/internal/memes/app"
	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/ports/api"
	"memhub/pkg/logger"
)

const bearerPrefix = "Bearer "

// ErrMissingToken - в запросе нет access токена.
var ErrMissingToken = errors.New("missing bearer token")

type claimsKey struct{}

// NewAuthMiddleware проверяет access токен из заголовка Authorization
// и сохраняет его содержимое для обработчиков.
func NewAuthMiddleware(auth api.AuthUseCase) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := c.Context()
		log := logger.Log(ctx).With(zap.String("middleware", "auth"))

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) || len(header) == len(bearerPrefix) {
			log.Debug(ctx, ErrMissingToken.Error())
			return response.ErrorWithStatus(c, fiber.StatusUnauthorized, ErrMissingToken)
		}

		claims, err := auth.Authenticate(ctx, strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return response.Error(c, err)
		}

		c.Locals(claimsKey{}, claims)
		return c.Next()
	}
}

// NewAdminMiddleware пропускает только администраторов. Ставится после NewAuthMiddleware.
func NewAdminMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, _ := Claims(c)
		if err := app.AssertIsAdmin(claims); err != nil {
			return response.Error(c, err)
		}
		return c.Next()
	}
}

// Claims возвращает содержимое проверенного access токена.
func Claims(c fiber.Ctx) (*services.TokenClaims, bool) {
	claims, ok := c.Locals(claimsKey{}).(*services.TokenClaims)
	return claims, ok && claims != nil
}
