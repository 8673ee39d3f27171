package response

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
)

// JSON отправляет данные с заданным статусом.
func JSON(c fiber.Ctx, status int, data any) error {
	if err := c.Status(status).JSON(data); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// OK отправляет 200 с данными.
func OK(c fiber.Ctx, data any) error {
	return JSON(c, http.StatusOK, data)
}

// Created отправляет 201 с данными.
func Created(c fiber.Ctx, data any) error {
	return JSON(c, http.StatusCreated, data)
}

// NoContent отправляет 204.
func NoContent(c fiber.Ctx) error {
	if err := c.SendStatus(http.StatusNoContent); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
