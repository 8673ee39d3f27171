package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"memhub/internal/memes/ports/repositories"
	"memhub/pkg/logger"
	"memhub/pkg/resilience"
)

const (
	msgBucketCreated = "image bucket created"
	msgBucketExists  = "image bucket already exists"

	errCtxEnsureBucket = "ensuring image bucket"
	errCtxSaveImage    = "saving image"
	errCtxGetImage     = "reading image"
	errCtxDeleteImage  = "deleting image"
)

// ImageRepository хранит изображения в одном бакете, ключ объекта - путь изображения.
type ImageRepository struct {
	client ObjectClient
	bucket string
	region string
	policy *resilience.Policy
}

// NewImageRepository создает хранилище изображений. Все обращения к S3 идут через policy.
func NewImageRepository(client ObjectClient, bucket, region string, policy *resilience.Policy) *ImageRepository {
	return &ImageRepository{
		client: client,
		bucket: bucket,
		region: region,
		policy: policy,
	}
}

// EnsureBucket создает бакет, если его еще нет.
func (r *ImageRepository) EnsureBucket(ctx context.Context) error {
	log := logger.Log(ctx).With(zap.String("method", "EnsureBucket"), zap.String("bucket", r.bucket))

	var exists bool
	err := r.policy.Execute(ctx, func(ctx context.Context) error {
		var err error
		exists, err = r.client.BucketExists(ctx, r.bucket)
		return err
	})
	if err != nil {
		log.Error(ctx, errCtxEnsureBucket, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxEnsureBucket, err)
	}
	if exists {
		log.Debug(ctx, msgBucketExists)
		return nil
	}

	if err := r.policy.Execute(ctx, func(ctx context.Context) error {
		return r.client.MakeBucket(ctx, r.bucket, r.region)
	}); err != nil {
		log.Error(ctx, errCtxEnsureBucket, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxEnsureBucket, err)
	}

	log.Info(ctx, msgBucketCreated)
	return nil
}

// Save записывает изображение.
func (r *ImageRepository) Save(ctx context.Context, path string, data []byte) error {
	err := r.policy.Execute(ctx, func(ctx context.Context) error {
		return r.client.Put(ctx, r.bucket, path, data)
	})
	if err != nil {
		logger.Log(ctx).Error(ctx, errCtxSaveImage, zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxSaveImage, err)
	}
	return nil
}

// Get читает изображение; отсутствующий объект - repositories.ErrImageNotFound.
func (r *ImageRepository) Get(ctx context.Context, path string) ([]byte, error) {
	var data []byte
	err := r.policy.Execute(ctx, func(ctx context.Context) error {
		var err error
		data, err = r.client.Get(ctx, r.bucket, path)
		if errors.Is(err, ErrObjectNotFound) {
			return resilience.Permanent(err)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, fmt.Errorf("%s: %w", errCtxGetImage, repositories.ErrImageNotFound)
		}
		logger.Log(ctx).Error(ctx, errCtxGetImage, zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGetImage, err)
	}
	return data, nil
}

// Delete удаляет изображение. S3 не сообщает об отсутствии объекта при удалении.
func (r *ImageRepository) Delete(ctx context.Context, path string) error {
	err := r.policy.Execute(ctx, func(ctx context.Context) error {
		return r.client.Remove(ctx, r.bucket, path)
	})
	if err != nil {
		logger.Log(ctx).Error(ctx, errCtxDeleteImage, zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeleteImage, err)
	}
	return nil
}

var _ repositories.ImageRepository = (*ImageRepository)(nil)
