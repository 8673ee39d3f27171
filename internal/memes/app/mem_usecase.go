// Package app содержит сценарии работы с мемами, пользователями и аутентификацией.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
	"memhub/internal/memes/ports/api"
	"memhub/internal/memes/ports/repositories"
	svc "memhub/internal/memes/ports/services"
	"memhub/pkg/logger"
)

const (
	methodAddMem        = "AddMem"
	methodGetMemByID    = "GetMemByID"
	methodGetMemImage   = "GetMemImage"
	methodGetAllMemes   = "GetAllMemes"
	methodUpdateMem     = "UpdateMem"
	methodDeleteMemByID = "DeleteMemByID"

	msgMemAdded        = "mem added"
	msgMemExists       = "mem already exists"
	msgMemNotFound     = "mem not found"
	msgMemUpdated      = "mem updated"
	msgMemDeleted      = "mem deleted"
	msgImageNotFound   = "image not found"
	msgInvalidMemInput = "invalid mem input"

	msgErrSaveImage      = "failed to save image"
	msgErrRollbackImage  = "failed to remove image after failed write"
	msgErrDeleteOldImage = "failed to delete replaced image"
	msgErrDeleteImage    = "failed to delete mem image"
	msgErrFindMem        = "failed to find mem"
	msgErrAddMem         = "failed to add mem"
	msgErrUpdateMem      = "failed to update mem"
	msgErrDeleteMem      = "failed to delete mem"
	msgErrListMemes      = "failed to list memes"
	msgErrReadImage      = "failed to read image"

	errCtxSavingImage   = "saving image"
	errCtxAddingMem     = "adding mem"
	errCtxFindingMem    = "finding mem"
	errCtxReadingImage  = "reading image"
	errCtxListingMemes  = "listing memes"
	errCtxUpdatingMem   = "updating mem"
	errCtxDeletingImage = "deleting image"
	errCtxDeletingMem   = "deleting mem"

	imagePathPrefix = "mem_"
)

// MemUseCaseImpl реализует api.MemUseCase.
type MemUseCaseImpl struct {
	memRepo   repositories.MemRepository
	imageRepo repositories.ImageRepository
	ids       svc.IDGenerator
}

// NewMemUseCase создает сервис мемов.
func NewMemUseCase(
	memRepo repositories.MemRepository,
	imageRepo repositories.ImageRepository,
	ids svc.IDGenerator,
) api.MemUseCase {
	return &MemUseCaseImpl{memRepo: memRepo, imageRepo: imageRepo, ids: ids}
}

// AddMem создает мем. Изображение, если есть, записывается до записи мема
// и удаляется, если запись мема не удалась.
func (m *MemUseCaseImpl) AddMem(ctx context.Context, text string, image []byte) (*services.MemRead, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddMem))

	id, err := values.NewIdentifier(m.ids.New())
	if err != nil {
		return nil, err
	}
	memText, err := values.NewText(text)
	if err != nil {
		log.Debug(ctx, msgInvalidMemInput, zap.Error(err))
		return nil, err
	}

	var path *values.ImagePath
	if image != nil {
		p, err := values.NewImagePath(imagePathPrefix + id.String())
		if err != nil {
			return nil, err
		}
		if err := m.imageRepo.Save(ctx, p.Value(), image); err != nil {
			log.Error(ctx, msgErrSaveImage, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxSavingImage, err)
		}
		path = &p
	}

	mem, err := entities.NewMem(id, memText, path)
	if err != nil {
		if path != nil {
			m.removeImage(ctx, log, path.Value(), msgErrRollbackImage)
		}
		return nil, err
	}

	added, err := m.memRepo.Add(ctx, mem)
	if err != nil {
		if path != nil {
			m.removeImage(ctx, log, path.Value(), msgErrRollbackImage)
		}
		if errors.Is(err, repositories.ErrEntityExists) {
			log.Debug(ctx, msgMemExists, zap.String("id", id.String()))
			return nil, fmt.Errorf("%s: %w", errCtxAddingMem, services.ErrMemExists)
		}
		log.Error(ctx, msgErrAddMem, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddingMem, err)
	}

	log.Info(ctx, msgMemAdded, zap.String("id", id.String()), zap.Bool("with_image", path != nil))
	return services.NewMemRead(added), nil
}

// GetMemByID возвращает мем или services.ErrMemNotFound.
func (m *MemUseCaseImpl) GetMemByID(ctx context.Context, id uuid.UUID) (*services.MemRead, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetMemByID), zap.String("id", id.String()))

	mem, err := m.findMem(ctx, log, id)
	if err != nil {
		return nil, err
	}
	return services.NewMemRead(mem), nil
}

// GetMemImage возвращает байты изображения по пути.
func (m *MemUseCaseImpl) GetMemImage(ctx context.Context, path string) ([]byte, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetMemImage), zap.String("path", path))

	imagePath, err := values.NewImagePath(path)
	if err != nil {
		return nil, err
	}

	data, err := m.imageRepo.Get(ctx, imagePath.Value())
	if err != nil {
		if errors.Is(err, repositories.ErrImageNotFound) {
			log.Debug(ctx, msgImageNotFound)
			return nil, fmt.Errorf("%s: %w", errCtxReadingImage, services.ErrImageNotFound)
		}
		log.Error(ctx, msgErrReadImage, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxReadingImage, err)
	}
	return data, nil
}

// GetAllMemes возвращает страницу мемов. page начинается с 1.
func (m *MemUseCaseImpl) GetAllMemes(ctx context.Context, page, perPage int) ([]*services.MemRead, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetAllMemes), zap.Int("page", page), zap.Int("per_page", perPage))

	p, err := values.NewPage(page, perPage)
	if err != nil {
		return nil, err
	}

	memes, err := m.memRepo.List(ctx, p)
	if err != nil {
		log.Error(ctx, msgErrListMemes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingMemes, err)
	}

	result := make([]*services.MemRead, 0, len(memes))
	for _, mem := range memes {
		result = append(result, services.NewMemRead(mem))
	}
	return result, nil
}

// UpdateMem заменяет текст и, если передано, изображение мема. Новое изображение
// пишется под новым путем; старое удаляется только после обновления записи.
func (m *MemUseCaseImpl) UpdateMem(ctx context.Context, id uuid.UUID, text string, image []byte) (*services.MemRead, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateMem), zap.String("id", id.String()))

	existing, err := m.findMem(ctx, log, id)
	if err != nil {
		return nil, err
	}

	memText, err := values.NewText(text)
	if err != nil {
		log.Debug(ctx, msgInvalidMemInput, zap.Error(err))
		return nil, err
	}

	oldPath, hadImage := existing.ImagePath()
	var path *values.ImagePath
	if hadImage {
		path = &oldPath
	}

	replaced := false
	if image != nil {
		p, err := values.NewImagePath(fmt.Sprintf("%s%s_%s", imagePathPrefix, id, m.ids.New()))
		if err != nil {
			return nil, err
		}
		if err := m.imageRepo.Save(ctx, p.Value(), image); err != nil {
			log.Error(ctx, msgErrSaveImage, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxSavingImage, err)
		}
		path = &p
		replaced = true
	}

	mem, err := entities.NewMem(existing.ID(), memText, path)
	if err != nil {
		if replaced {
			m.removeImage(ctx, log, path.Value(), msgErrRollbackImage)
		}
		return nil, err
	}

	updated, err := m.memRepo.Update(ctx, mem)
	if err != nil {
		if replaced {
			m.removeImage(ctx, log, path.Value(), msgErrRollbackImage)
		}
		switch {
		case errors.Is(err, repositories.ErrEntityNotFound):
			log.Debug(ctx, msgMemNotFound)
			return nil, fmt.Errorf("%s: %w", errCtxUpdatingMem, services.ErrMemNotFound)
		case errors.Is(err, repositories.ErrEntityExists):
			log.Debug(ctx, msgMemExists)
			return nil, fmt.Errorf("%s: %w", errCtxUpdatingMem, services.ErrMemExists)
		}
		log.Error(ctx, msgErrUpdateMem, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingMem, err)
	}

	if replaced && hadImage {
		m.removeImage(ctx, log, oldPath.Value(), msgErrDeleteOldImage)
	}

	log.Info(ctx, msgMemUpdated, zap.Bool("image_replaced", replaced))
	return services.NewMemRead(updated), nil
}

// DeleteMemByID удаляет изображение мема, затем сам мем.
func (m *MemUseCaseImpl) DeleteMemByID(ctx context.Context, id uuid.UUID) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteMemByID), zap.String("id", id.String()))

	existing, err := m.findMem(ctx, log, id)
	if err != nil {
		return err
	}

	if path, ok := existing.ImagePath(); ok {
		if err := m.imageRepo.Delete(ctx, path.Value()); err != nil {
			log.Error(ctx, msgErrDeleteImage, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxDeletingImage, err)
		}
	}

	if err := m.memRepo.DeleteByID(ctx, existing.ID()); err != nil {
		if errors.Is(err, repositories.ErrEntityNotFound) {
			log.Debug(ctx, msgMemNotFound)
			return fmt.Errorf("%s: %w", errCtxDeletingMem, services.ErrMemNotFound)
		}
		log.Error(ctx, msgErrDeleteMem, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingMem, err)
	}

	log.Info(ctx, msgMemDeleted)
	return nil
}

func (m *MemUseCaseImpl) findMem(ctx context.Context, log *logger.Logger, id uuid.UUID) (*entities.Mem, error) {
	memID, err := values.NewIdentifier(id)
	if err != nil {
		return nil, err
	}

	mem, err := m.memRepo.GetByID(ctx, memID)
	if err != nil {
		log.Error(ctx, msgErrFindMem, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingMem, err)
	}
	if mem == nil {
		log.Debug(ctx, msgMemNotFound)
		return nil, fmt.Errorf("%s: %w", errCtxFindingMem, services.ErrMemNotFound)
	}
	return mem, nil
}

func (m *MemUseCaseImpl) removeImage(ctx context.Context, log *logger.Logger, path, msg string) {
	if err := m.imageRepo.Delete(ctx, path); err != nil {
		log.Warn(ctx, msg, zap.String("path", path), zap.Error(err))
	}
}
