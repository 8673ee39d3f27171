package repositories

import (
	"context"
	"errors"
)

// ErrImageNotFound возвращается, если по ключу нет изображения.
var ErrImageNotFound = errors.New("image not found in storage")

// ImageRepository хранит бинарные изображения по строковому ключу.
type ImageRepository interface {
	Save(ctx context.Context, path string, data []byte) error

	Get(ctx context.Context, path string) ([]byte, error)

	Delete(ctx context.Context, path string) error
}
