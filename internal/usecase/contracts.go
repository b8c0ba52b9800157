package usecase

import (
	"context"
	"io"

	"github.com/akulagin/media-store/internal/dto"
	"github.com/akulagin/media-store/internal/entity"
)

type (
	MediaUseCase interface {
		ListAll(ctx context.Context) ([]entity.Media, error)
		GetByID(ctx context.Context, id int64) (*entity.Media, error)
		CreateFromUpload(
			ctx context.Context,
			data io.Reader,
			originalName string,
			mimeType string,
		) (*entity.Media, error)
		Update(ctx context.Context, id int64, upd dto.UpdateMedia) (*entity.Media, error)
		SoftDelete(ctx context.Context, id int64) (*entity.Media, error)
		Restore(ctx context.Context, id int64) (*entity.Media, error)
		Remove(ctx context.Context, id int64) error
		Health(ctx context.Context) error
	}
)
