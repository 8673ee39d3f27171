// Package auth содержит HTTP обработчики регистрации, входа и работы с токенами.
package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"memhub/internal/memes/adapters/http/dto"
	"memhub/internal/memes/adapters/http/response"
	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/ports/api"
)

// RefreshCookieName - имя httponly cookie с refresh токеном.
const RefreshCookieName = "refresh_token"

// ErrMissingRefreshToken - запрос пришел без refresh cookie.
var ErrMissingRefreshToken = errors.New("missing refresh token cookie")

// CookieConfig - параметры refresh cookie.
type CookieConfig struct {
	Path   string
	Secure bool
}

// Handler содержит HTTP обработчики для авторизации.
type Handler struct {
	auth   api.AuthUseCase
	cookie CookieConfig
}

// NewHandler создает обработчик авторизации.
func NewHandler(auth api.AuthUseCase, cookie CookieConfig) *Handler {
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	return &Handler{auth: auth, cookie: cookie}
}

// Register регистрирует пользователя с ролью USER.
func (h *Handler) Register(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return response.Error(c, response.BindError(err))
	}

	pair, err := h.auth.Register(c.Context(), req.ToUserCreate())
	if err != nil {
		return response.Error(c, err)
	}

	h.setRefreshCookie(c, pair)
	return response.Created(c, dto.NewTokenResponse(pair))
}

// Login выдает пару токенов по логину и паролю.
func (h *Handler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return response.Error(c, response.BindError(err))
	}

	pair, err := h.auth.Login(c.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.ErrorWithStatus(c, fiber.StatusUnauthorized, err)
		}
		return response.Error(c, err)
	}

	h.setRefreshCookie(c, pair)
	return response.OK(c, dto.NewTokenResponse(pair))
}

// RefreshTokens меняет refresh токен из cookie на новую пару.
func (h *Handler) RefreshTokens(c fiber.Ctx) error {
	token := c.Cookies(RefreshCookieName)
	if token == "" {
		return response.ErrorWithStatus(c, fiber.StatusUnauthorized, ErrMissingRefreshToken)
	}

	pair, err := h.auth.RefreshTokens(c.Context(), token)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.ErrorWithStatus(c, fiber.StatusUnauthorized, err)
		}
		return response.Error(c, err)
	}

	h.setRefreshCookie(c, pair)
	return response.OK(c, dto.NewTokenResponse(pair))
}

// Logout отзывает refresh токен и удаляет cookie.
func (h *Handler) Logout(c fiber.Ctx) error {
	token := c.Cookies(RefreshCookieName)
	if token == "" {
		return response.ErrorWithStatus(c, fiber.StatusUnauthorized, ErrMissingRefreshToken)
	}

	if err := h.auth.Logout(c.Context(), token); err != nil {
		return response.Error(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookieName,
		Path:     h.cookie.Path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	return response.NoContent(c)
}

func (h *Handler) setRefreshCookie(c fiber.Ctx, pair *services.TokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookieName,
		Value:    pair.RefreshToken,
		Path:     h.cookie.Path,
		Expires:  pair.RefreshExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
