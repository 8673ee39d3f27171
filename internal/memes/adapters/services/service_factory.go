// Package services содержит адаптеры внешних сервисов: JWT, хеширование паролей, генератор идентификаторов.
package services

import (
	"fmt"

	"memhub/internal/memes/ports/services"
)

// FactoryConfig - параметры сервисов.
type FactoryConfig struct {
	AccessToken    TokenKey
	RefreshToken   TokenKey
	HashAlgorithm  string
	HashSalt       string
	HashIterations int
}

// ServiceFactory создает сервисы аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
	idGenerator     services.IDGenerator
}

// NewServiceFactory создает фабрику сервисов.
func NewServiceFactory(cfg FactoryConfig) (*ServiceFactory, error) {
	passwordService, err := NewPBKDF2(cfg.HashAlgorithm, cfg.HashSalt, cfg.HashIterations)
	if err != nil {
		return nil, fmt.Errorf("creating password service: %w", err)
	}
	return &ServiceFactory{
		passwordService: passwordService,
		tokenService:    NewJWT(cfg.AccessToken, cfg.RefreshToken),
		idGenerator:     UUIDGenerator{},
	}, nil
}

// PasswordService возвращает сервис паролей.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает сервис токенов.
func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}

// IDGenerator возвращает генератор идентификаторов.
func (f *ServiceFactory) IDGenerator() services.IDGenerator {
	return f.idGenerator
}
