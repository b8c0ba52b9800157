package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/akulagin/media-store/internal/dto"
	"github.com/akulagin/media-store/internal/entity"
	"github.com/akulagin/media-store/pkg/postgres"
	"github.com/akulagin/media-store/pkg/types/errs"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	mediaTable = "media"

	// Columns
	idColumn               = "id"
	originalFileNameColumn = "original_file_name"
	storedFileNameColumn   = "stored_file_name"
	mimeTypeColumn         = "mime_type"
	widthColumn            = "width"
	heightColumn           = "height"
	fileSizeColumn         = "file_size"
	createdAtColumn        = "created_at"
	updatedAtColumn        = "updated_at"
	deletedAtColumn        = "deleted_at"
)

type MediaRepo struct {
	*postgres.Postgres
}

func NewMediaRepo(pg *postgres.Postgres) *MediaRepo {
	return &MediaRepo{pg}
}

func (r *MediaRepo) Create(ctx context.Context, media *entity.Media) error {
	sql, args, err := r.Builder.
		Insert(mediaTable).
		Columns(
			originalFileNameColumn,
			storedFileNameColumn,
			mimeTypeColumn,
			widthColumn,
			heightColumn,
			fileSizeColumn,
			createdAtColumn,
			updatedAtColumn,
		).
		Values(
			media.OriginalFileName,
			media.StoredFileName,
			media.MimeType,
			media.Width,
			media.Height,
			media.FileSize,
			media.CreatedAt,
			media.UpdatedAt,
		).
		Suffix("RETURNING " + idColumn).
		ToSql()
	if err != nil {
		return fmt.Errorf("MediaRepo - Create - r.Builder.ToSql: %w", err)
	}

	// Pool / Tx
	executor := r.GetExecutor(ctx)

	err = executor.QueryRow(ctx, sql, args...).Scan(&media.ID)
	if err != nil {
		return fmt.Errorf("MediaRepo - Create - executor.QueryRow.Scan: %w", err)
	}

	return nil
}

func (r *MediaRepo) GetAll(ctx context.Context) ([]entity.Media, error) {
	sql, args, err := r.selectMedia().
		OrderBy(idColumn + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("MediaRepo - GetAll - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("MediaRepo - GetAll - executor.Query: %w", err)
	}
	defer rows.Close()

	items := make([]entity.Media, 0)

	for rows.Next() {
		var media entity.Media

		err = scanMedia(rows, &media)
		if err != nil {
			return nil, fmt.Errorf("MediaRepo - GetAll - rows.Scan: %w", err)
		}

		items = append(items, media)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("MediaRepo - GetAll - rows.Err: %w", err)
	}

	return items, nil
}

func (r *MediaRepo) GetByID(ctx context.Context, id int64) (*entity.Media, error) {
	sql, args, err := r.selectMedia().
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("MediaRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var media entity.Media

	err = scanMedia(executor.QueryRow(ctx, sql, args...), &media)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFound("media not found")
		}
		return nil, fmt.Errorf("MediaRepo - GetByID - executor.QueryRow.Scan: %w", err)
	}

	return &media, nil
}

func (r *MediaRepo) Update(ctx context.Context, id int64, upd dto.UpdateMedia, now time.Time) error {
	builder := r.Builder.
		Update(mediaTable).
		Set(updatedAtColumn, now).
		Where(squirrel.Eq{idColumn: id})

	if upd.OriginalFileName != nil {
		builder = builder.Set(originalFileNameColumn, *upd.OriginalFileName)
	}
	if upd.MimeType != nil {
		builder = builder.Set(mimeTypeColumn, *upd.MimeType)
	}
	if upd.Width != nil {
		builder = builder.Set(widthColumn, *upd.Width)
	}
	if upd.Height != nil {
		builder = builder.Set(heightColumn, *upd.Height)
	}
	if upd.FileSize != nil {
		builder = builder.Set(fileSizeColumn, *upd.FileSize)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("MediaRepo - Update - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("MediaRepo - Update - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return errs.NotFound("media not found")
	}

	return nil
}

// SoftDelete marks the record deleted with a single conditional update,
// so two concurrent calls cannot both pass the state check.
func (r *MediaRepo) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	sql, args, err := r.Builder.
		Update(mediaTable).
		Set(deletedAtColumn, now).
		Set(updatedAtColumn, now).
		Where(squirrel.And{
			squirrel.Eq{idColumn: id},
			squirrel.Eq{deletedAtColumn: nil},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("MediaRepo - SoftDelete - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("MediaRepo - SoftDelete - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return fmt.Errorf("MediaRepo - SoftDelete - r.exists: %w", err)
		}
		if !exists {
			return errs.NotFound("media not found")
		}
		return errs.Validation("media is already deleted")
	}

	return nil
}

// Restore clears deleted_at with the inverse condition of SoftDelete.
func (r *MediaRepo) Restore(ctx context.Context, id int64, now time.Time) error {
	sql, args, err := r.Builder.
		Update(mediaTable).
		Set(deletedAtColumn, nil).
		Set(updatedAtColumn, now).
		Where(squirrel.And{
			squirrel.Eq{idColumn: id},
			squirrel.NotEq{deletedAtColumn: nil},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("MediaRepo - Restore - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("MediaRepo - Restore - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return fmt.Errorf("MediaRepo - Restore - r.exists: %w", err)
		}
		if !exists {
			return errs.NotFound("media not found")
		}
		return errs.Validation("media is not deleted")
	}

	return nil
}

func (r *MediaRepo) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.Builder.
		Delete(mediaTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("MediaRepo - Delete - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("MediaRepo - Delete - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return errs.NotFound("media not found")
	}

	return nil
}

func (r *MediaRepo) Ping(ctx context.Context) error {
	return r.Pool.Ping(ctx)
}

func (r *MediaRepo) exists(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.Builder.
		Select("1").
		From(mediaTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var one int

	err = executor.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("executor.QueryRow.Scan: %w", err)
	}

	return true, nil
}

func (r *MediaRepo) selectMedia() squirrel.SelectBuilder {
	return r.Builder.
		Select(
			idColumn,
			originalFileNameColumn,
			storedFileNameColumn,
			mimeTypeColumn,
			widthColumn,
			heightColumn,
			fileSizeColumn,
			createdAtColumn,
			updatedAtColumn,
			deletedAtColumn,
		).
		From(mediaTable)
}

func scanMedia(row pgx.Row, media *entity.Media) error {
	return row.Scan(
		&media.ID,
		&media.OriginalFileName,
		&media.StoredFileName,
		&media.MimeType,
		&media.Width,
		&media.Height,
		&media.FileSize,
		&media.CreatedAt,
		&media.UpdatedAt,
		&media.DeletedAt,
	)
}
