package repo

import (
	"context"
	"io"
	"time"

	"github.com/akulagin/media-store/internal/dto"
	"github.com/akulagin/media-store/internal/entity"
)

type (
	// FileRepo persists uploaded binaries under server-chosen names.
	FileRepo interface {
		Save(ctx context.Context, name string, data io.Reader) (int64, error)
		Open(ctx context.Context, name string) (io.ReadCloser, error)
		// Remove is idempotent: a missing file is not an error.
		Remove(ctx context.Context, name string) error
		Health(ctx context.Context) error
	}

	// MediaRepo is the media table.
	MediaRepo interface {
		Create(ctx context.Context, media *entity.Media) error
		GetAll(ctx context.Context) ([]entity.Media, error)
		GetByID(ctx context.Context, id int64) (*entity.Media, error)
		Update(ctx context.Context, id int64, upd dto.UpdateMedia, now time.Time) error
		// SoftDelete and Restore are conditional single-statement updates:
		// the state check and the mutation land atomically.
		SoftDelete(ctx context.Context, id int64, now time.Time) error
		Restore(ctx context.Context, id int64, now time.Time) error
		Delete(ctx context.Context, id int64) error
		Ping(ctx context.Context) error
	}

	Transactor interface {
		WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error
	}
)
