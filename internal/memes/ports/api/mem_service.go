// Package api описывает входные порты сценариев приложения.
package api

import (
	"context"

	"github.com/google/uuid"

	"memhub/internal/memes/domain/services"
)

// MemUseCase - сценарии работы с мемами. image == nil означает отсутствие изображения.
type MemUseCase interface {
	AddMem(ctx context.Context, text string, image []byte) (*services.MemRead, error)

	GetMemByID(ctx context.Context, id uuid.UUID) (*services.MemRead, error)

	GetMemImage(ctx context.Context, path string) ([]byte, error)

	GetAllMemes(ctx context.Context, page, perPage int) ([]*services.MemRead, error)

	UpdateMem(ctx context.Context, id uuid.UUID, text string, image []byte) (*services.MemRead, error)

	DeleteMemByID(ctx context.Context, id uuid.UUID) error
}
