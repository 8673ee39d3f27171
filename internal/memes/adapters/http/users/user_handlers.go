// Package users содержит HTTP обработчики управления пользователями.
package users

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"memhub/internal/memes/adapters/http/dto"
	"memhub/internal/memes/adapters/http/middleware"
	"memhub/internal/memes/adapters/http/response"
	"memhub/internal/memes/domain/values"
	"memhub/internal/memes/ports/api"
)

// ErrInvalidUserID - параметр пути не является UUID.
var ErrInvalidUserID = errors.New("invalid user id")

// Handler содержит HTTP обработчики пользователей.
type Handler struct {
	users api.UserUseCase
}

// NewHandler создает обработчик пользователей.
func NewHandler(users api.UserUseCase) *Handler {
	return &Handler{users: users}
}

// Me возвращает профиль владельца access токена.
func (h *Handler) Me(c fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.ErrorWithStatus(c, fiber.StatusUnauthorized, middleware.ErrMissingToken)
	}

	user, err := h.users.GetUserByID(c.Context(), claims.UserID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, user)
}

// GetAll возвращает всех пользователей.
func (h *Handler) GetAll(c fiber.Ctx) error {
	users, err := h.users.GetAllUsers(c.Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, users)
}

// GetByRole возвращает пользователей с ролью из параметра role.
func (h *Handler) GetByRole(c fiber.Ctx) error {
	role, err := values.ParseRole(c.Query("role"))
	if err != nil {
		return response.Error(c, err)
	}

	users, err := h.users.GetUsersByRole(c.Context(), role)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, users)
}

// Get возвращает пользователя по идентификатору.
func (h *Handler) Get(c fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.users.GetUserByID(c.Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, user)
}

// Create создает пользователя с заданной ролью.
func (h *Handler) Create(c fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.Bind().JSON(&req); err != nil {
		return response.Error(c, response.BindError(err))
	}

	user, err := h.users.CreateUser(c.Context(), req.ToUserCreate())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, user)
}

// Update заменяет данные пользователя.
func (h *Handler) Update(c fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.Bind().JSON(&req); err != nil {
		return response.Error(c, response.BindError(err))
	}

	user, err := h.users.UpdateUser(c.Context(), req.ToUserUpdate(id))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, user)
}

// Delete удаляет пользователя.
func (h *Handler) Delete(c fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.users.DeleteUserByID(c.Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}

func userID(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, ErrInvalidUserID.Error())
	}
	return id, nil
}
