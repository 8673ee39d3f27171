// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"memhub/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware кладет идентификатор запроса в контекст запроса и в ответ.
// Если клиент не прислал идентификатор или прислал непригодный, генерируется новый.
func NewRequestIDMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		ctx := logger.NewRequestIDContext(c.Context(), strings.Clone(c.Get(HeaderRequestID)))
		if id, ok := logger.GetRequestID(ctx); ok {
			c.Set(HeaderRequestID, id)
		}
		c.SetContext(ctx)
		return c.Next()
	}
}
