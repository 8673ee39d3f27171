// Package response отправляет JSON ответы и переводит ошибки сценариев в HTTP статусы.
package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
	"memhub/pkg/logger"
)

const (
	msgInternalError = "internal server error"
	msgInvalidBody   = "invalid request body"

	logRequestFailed = "request failed"
	logSendFailed    = "failed to send error response"
)

// ErrorBody - тело ответа с ошибкой.
type ErrorBody struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError описывает ошибку проверки одного поля.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Limit string `json:"limit,omitempty"`
}

// Status возвращает HTTP статус для ошибки сценария.
func Status(err error) int {
	var (
		validationErrs validator.ValidationErrors
		fiberErr       *fiber.Error
	)
	switch {
	case errors.Is(err, values.ErrValidation), errors.As(err, &validationErrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrMemNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrMemExists), errors.Is(err, services.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrWrongPassword),
		errors.Is(err, services.ErrTokenExpired),
		errors.Is(err, services.ErrTokenCorrupted),
		errors.Is(err, services.ErrTokenRevoked):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrAccessDenied):
		return http.StatusForbidden
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	}
	return http.StatusInternalServerError
}

// Error отправляет ответ со статусом из Status. Текст внутренних ошибок наружу не попадает.
func Error(c fiber.Ctx, err error) error {
	return ErrorWithStatus(c, Status(err), err)
}

// ErrorWithStatus отправляет ответ с заданным статусом.
func ErrorWithStatus(c fiber.Ctx, status int, err error) error {
	ctx := c.Context()
	log := logger.Log(ctx).With(zap.Int("status", status))

	body := ErrorBody{Error: err.Error()}
	var (
		validationErrs validator.ValidationErrors
		valueErr       *values.ValidationError
		fiberErr       *fiber.Error
	)
	switch {
	case status >= http.StatusInternalServerError:
		log.Error(ctx, logRequestFailed, zap.Error(err))
		body.Error = msgInternalError
	case errors.As(err, &validationErrs):
		body.Error = msgInvalidBody
		for _, fe := range validationErrs {
			body.Fields = append(body.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Limit: fe.Param()})
		}
	case errors.As(err, &valueErr):
		body.Error = valueErr.Error()
		field := FieldError{Field: valueErr.Field, Rule: valueErr.Kind.Error()}
		if valueErr.Limit > 0 {
			field.Limit = strconv.Itoa(valueErr.Limit)
		}
		body.Fields = []FieldError{field}
	case errors.As(err, &fiberErr):
		body.Error = fiberErr.Message
	default:
		log.Debug(ctx, logRequestFailed, zap.Error(err))
	}

	if sendErr := c.Status(status).JSON(body); sendErr != nil {
		log.Error(ctx, logSendFailed, zap.Error(sendErr))
		return sendErr
	}
	return nil
}

// ErrorHandler - обработчик ошибок fiber для ошибок, не отправленных обработчиками.
func ErrorHandler(c fiber.Ctx, err error) error {
	return Error(c, err)
}

// BindError приводит ошибку чтения тела запроса к ответу 400.
// Ошибки проверки полей возвращаются без изменений и дают 422.
func BindError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return err
	}
	return fiber.NewError(fiber.StatusBadRequest, msgInvalidBody)
}
