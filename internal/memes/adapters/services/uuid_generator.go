package services

import (
	"github.com/google/uuid"

	svc "memhub/internal/memes/ports/services"
)

// UUIDGenerator выдает случайные UUID v4.
type UUIDGenerator struct{}

// New возвращает новый UUID.
func (UUIDGenerator) New() uuid.UUID {
	return uuid.New()
}

var _ svc.IDGenerator = UUIDGenerator{}
