package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"memhub/internal/memes/ports/repositories"
	"memhub/pkg/logger"
)

const (
	imageKeyPrefix = "memhub:image:"

	errCtxSaveImage   = "saving image"
	errCtxGetImage    = "reading image"
	errCtxDeleteImage = "deleting image"
)

// ImageRepository хранит изображения в Redis по ключу с префиксом.
type ImageRepository struct {
	client redis.Cmdable
}

// NewImageRepository создает хранилище изображений на Redis.
func NewImageRepository(client redis.Cmdable) *ImageRepository {
	return &ImageRepository{client: client}
}

// Save записывает изображение без срока жизни.
func (r *ImageRepository) Save(ctx context.Context, path string, data []byte) error {
	if err := r.client.Set(ctx, imageKeyPrefix+path, data, 0).Err(); err != nil {
		logger.Log(ctx).Error(ctx, errCtxSaveImage, zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxSaveImage, err)
	}
	return nil
}

// Get читает изображение; если его нет - repositories.ErrImageNotFound.
func (r *ImageRepository) Get(ctx context.Context, path string) ([]byte, error) {
	data, err := r.client.Get(ctx, imageKeyPrefix+path).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%s: %w", errCtxGetImage, repositories.ErrImageNotFound)
		}
		logger.Log(ctx).Error(ctx, errCtxGetImage, zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGetImage, err)
	}
	return data, nil
}

// Delete удаляет изображение. Отсутствие ключа ошибкой не считается.
func (r *ImageRepository) Delete(ctx context.Context, path string) error {
	if err := r.client.Del(ctx, imageKeyPrefix+path).Err(); err != nil {
		logger.Log(ctx).Error(ctx, errCtxDeleteImage, zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeleteImage, err)
	}
	return nil
}

var _ repositories.ImageRepository = (*ImageRepository)(nil)
