package http

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"memhub/internal/memes/adapters/http/response"
	"memhub/pkg/logger"
)

// Pinger проверяет доступность зависимости.
type Pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(pingers map[string]Pinger) fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := c.Context()
		status := fiber.StatusOK
		checks := make(map[string]string, len(pingers))
		for name, p := range pingers {
			if err := p.Ping(ctx); err != nil {
				logger.Log(ctx).Warn(ctx, "health check failed", zap.String("dependency", name), zap.Error(err))
				checks[name] = "unavailable"
				status = fiber.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}

		state := "ok"
		if status != fiber.StatusOK {
			state = "degraded"
		}
		return response.JSON(c, status, fiber.Map{"status": state, "checks": checks})
	}
}
