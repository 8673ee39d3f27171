// Package services содержит представления для чтения, входные данные и ошибки сценариев.
package services

import (
	"errors"

	"github.com/google/uuid"

	"memhub/internal/memes/domain/entities"
)

// Ошибки домена мемов.
var (
	ErrMemNotFound   = errors.New("mem not found")
	ErrMemExists     = errors.New("mem already exists")
	ErrImageNotFound = errors.New("image not found")
)

// MemRead - представление мема для чтения.
type MemRead struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	ImagePath *string   `json:"image_path"`
}

// NewMemRead строит представление из сущности.
func NewMemRead(m *entities.Mem) *MemRead {
	read := &MemRead{
		ID:   m.ID().Value(),
		Text: m.Text().Value(),
	}
	if path, ok := m.ImagePath(); ok {
		p := path.Value()
		read.ImagePath = &p
	}
	return read
}
