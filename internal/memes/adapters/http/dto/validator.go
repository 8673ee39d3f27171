// Package dto содержит объекты запросов и ответов HTTP API.
package dto

import (
	"github.com/go-playground/validator/v10"
)

// Validator проверяет теги validate у тел запросов. Подключается к fiber.Config.StructValidator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator создает валидатор, использующий json-имена полей в ошибках.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validate: v}
}

// Validate проверяет структуру; возвращает validator.ValidationErrors.
func (v *Validator) Validate(out any) error {
	return v.validate.Struct(out)
}
