package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/akulagin/media-store/internal/dto"
	"github.com/akulagin/media-store/internal/entity"
	"github.com/akulagin/media-store/internal/repo"
	"github.com/akulagin/media-store/pkg/logger"
	"github.com/akulagin/media-store/pkg/metrics"
	"github.com/akulagin/media-store/pkg/types/errs"
	"github.com/google/uuid"
)

type MediaUseCase struct {
	mediaRepo  repo.MediaRepo
	fileRepo   repo.FileRepo
	transactor repo.Transactor

	logger logger.Interface
}

func New(
	mediaRepo repo.MediaRepo,
	fileRepo repo.FileRepo,
	transactor repo.Transactor,
	l logger.Interface,
) *MediaUseCase {
	return &MediaUseCase{
		mediaRepo:  mediaRepo,
		fileRepo:   fileRepo,
		transactor: transactor,
		logger:     l,
	}
}

func (uc *MediaUseCase) ListAll(ctx context.Context) ([]entity.Media, error) {
	items, err := uc.mediaRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - ListAll - uc.mediaRepo.GetAll: %w", err)
	}

	return items, nil
}

func (uc *MediaUseCase) GetByID(ctx context.Context, id int64) (*entity.Media, error) {
	media, err := uc.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - GetByID - uc.mediaRepo.GetByID: %w", err)
	}

	return media, nil
}

func (uc *MediaUseCase) CreateFromUpload(
	ctx context.Context,
	data io.Reader,
	originalName string,
	mimeType string,
) (*entity.Media, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, errs.Validation("only image uploads are allowed")
	}

	storedName := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))

	// 1. persist the binary under the generated name
	size, err := uc.fileRepo.Save(ctx, storedName, data)
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - CreateFromUpload - uc.fileRepo.Save: %w", err)
	}

	// 2. probe dimensions from the stored file
	width, height, err := uc.probeDimensions(ctx, storedName)
	if err != nil {
		uc.removeFile(ctx, storedName)

		return nil, fmt.Errorf("MediaUseCase - CreateFromUpload - uc.probeDimensions: %w", err)
	}

	now := time.Now()

	media := &entity.Media{
		OriginalFileName: originalName,
		StoredFileName:   storedName,
		MimeType:         mimeType,
		Width:            width,
		Height:           height,
		FileSize:         size,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// 3. insert the row; on failure the stored file must not leak
	err = uc.mediaRepo.Create(ctx, media)
	if err != nil {
		uc.removeFile(ctx, storedName)

		return nil, fmt.Errorf("MediaUseCase - CreateFromUpload - uc.mediaRepo.Create: %w", err)
	}

	metrics.UploadedBytes.Add(float64(size))

	return media, nil
}

func (uc *MediaUseCase) Update(ctx context.Context, id int64, upd dto.UpdateMedia) (*entity.Media, error) {
	if upd.Width != nil && *upd.Width <= 0 {
		return nil, errs.Validation("width must be positive")
	}
	if upd.Height != nil && *upd.Height <= 0 {
		return nil, errs.Validation("height must be positive")
	}
	if upd.FileSize != nil && *upd.FileSize <= 0 {
		return nil, errs.Validation("fileSize must be positive")
	}

	var media *entity.Media

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.mediaRepo.Update(ctx, id, upd, time.Now()); err != nil {
			return fmt.Errorf("uc.mediaRepo.Update: %w", err)
		}

		var err error
		media, err = uc.mediaRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("uc.mediaRepo.GetByID: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - Update: %w", err)
	}

	return media, nil
}

func (uc *MediaUseCase) SoftDelete(ctx context.Context, id int64) (*entity.Media, error) {
	var media *entity.Media

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.mediaRepo.SoftDelete(ctx, id, time.Now()); err != nil {
			return fmt.Errorf("uc.mediaRepo.SoftDelete: %w", err)
		}

		var err error
		media, err = uc.mediaRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("uc.mediaRepo.GetByID: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - SoftDelete: %w", err)
	}

	return media, nil
}

func (uc *MediaUseCase) Restore(ctx context.Context, id int64) (*entity.Media, error) {
	var media *entity.Media

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.mediaRepo.Restore(ctx, id, time.Now()); err != nil {
			return fmt.Errorf("uc.mediaRepo.Restore: %w", err)
		}

		var err error
		media, err = uc.mediaRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("uc.mediaRepo.GetByID: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("MediaUseCase - Restore: %w", err)
	}

	return media, nil
}

func (uc *MediaUseCase) Remove(ctx context.Context, id int64) error {
	// 1. need the stored filename before the row goes away
	media, err := uc.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("MediaUseCase - Remove - uc.mediaRepo.GetByID: %w", err)
	}

	// 2. the row first
	err = uc.mediaRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("MediaUseCase - Remove - uc.mediaRepo.Delete: %w", err)
	}

	// 3. the file, best-effort: once the row is gone the client sees success
	err = uc.fileRepo.Remove(ctx, media.StoredFileName)
	if err != nil {
		uc.logger.Warn("failed to remove file name=%s, error=%v", media.StoredFileName, err)
	}

	return nil
}

func (uc *MediaUseCase) Health(ctx context.Context) error {
	if err := uc.mediaRepo.Ping(ctx); err != nil {
		return fmt.Errorf("MediaUseCase - Health - uc.mediaRepo.Ping: %w", err)
	}

	if err := uc.fileRepo.Health(ctx); err != nil {
		return fmt.Errorf("MediaUseCase - Health - uc.fileRepo.Health: %w", err)
	}

	return nil
}

func (uc *MediaUseCase) probeDimensions(ctx context.Context, storedName string) (int, int, error) {
	file, err := uc.fileRepo.Open(ctx, storedName)
	if err != nil {
		return 0, 0, fmt.Errorf("uc.fileRepo.Open: %w", err)
	}
	defer file.Close()

	return decodeDimensions(file)
}

func (uc *MediaUseCase) removeFile(ctx context.Context, storedName string) {
	if err := uc.fileRepo.Remove(ctx, storedName); err != nil {
		uc.logger.Error(err, "MediaUseCase - removeFile")
	}
}
