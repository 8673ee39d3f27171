// Package http содержит HTTP API сервиса мемов на fiber.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"memhub/internal/memes/adapters/http/auth"
	"memhub/internal/memes/adapters/http/dto"
	"memhub/internal/memes/adapters/http/memes"
	"memhub/internal/memes/adapters/http/middleware"
	"memhub/internal/memes/adapters/http/response"
	"memhub/internal/memes/adapters/http/users"
	"memhub/internal/memes/ports/api"
)

// Deps - сценарии и инфраструктура, нужные маршрутам.
type Deps struct {
	Auth  api.AuthUseCase
	Users api.UserUseCase
	Memes api.MemUseCase

	// Health - зависимости, проверяемые /health, по имени.
	Health map[string]Pinger

	Registry *prometheus.Registry
	Cookie   auth.CookieConfig
}

// NewApp создает fiber приложение с валидатором тел запросов и общим обработчиком ошибок.
func NewApp(cfg fiber.Config) *fiber.App {
	cfg.StructValidator = dto.NewValidator()
	cfg.ErrorHandler = response.ErrorHandler
	return fiber.New(cfg)
}

// SetupRouter настраивает маршрутизацию.
func SetupRouter(app *fiber.App, deps Deps) error {
	metrics, err := middleware.NewMetrics(deps.Registry)
	if err != nil {
		return err
	}

	authHandler := auth.NewHandler(deps.Auth, deps.Cookie)
	userHandler := users.NewHandler(deps.Users)
	memHandler := memes.NewHandler(deps.Memes)

	requireAuth := middleware.NewAuthMiddleware(deps.Auth)
	requireAdmin := middleware.NewAdminMiddleware()

	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(metrics.Handler())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", healthHandler(deps.Health))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	apiGroup := app.Group("/api")

	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshTokens)
	authRoutes.Post("/logout", authHandler.Logout)

	userRoutes := apiGroup.Group("/user", requireAuth)
	userRoutes.Get("/me", userHandler.Me)
	userRoutes.Get("/all", userHandler.GetAll, requireAdmin)
	userRoutes.Get("/", userHandler.GetByRole, requireAdmin)
	userRoutes.Post("/", userHandler.Create, requireAdmin)
	userRoutes.Get("/:id", userHandler.Get, requireAdmin)
	userRoutes.Put("/:id", userHandler.Update, requireAdmin)
	userRoutes.Delete("/:id", userHandler.Delete, requireAdmin)

	memRoutes := apiGroup.Group("/memes")
	memRoutes.Get("/", memHandler.List)
	memRoutes.Get("/:id", memHandler.Get)
	memRoutes.Get("/:id/image", memHandler.Image)
	memRoutes.Post("/", memHandler.Create, requireAuth, requireAdmin)
	memRoutes.Put("/:id", memHandler.Update, requireAuth, requireAdmin)
	memRoutes.Delete("/:id", memHandler.Delete, requireAuth, requireAdmin)

	app.Use(func(c fiber.Ctx) error {
		return response.ErrorWithStatus(c, fiber.StatusNotFound, fiber.ErrNotFound)
	})
	return nil
}
