package persistent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FilesRepo stores uploaded binaries in a flat local directory,
// keyed by the server-generated stored filename.
type FilesRepo struct {
	root string
}

func NewFilesRepo(root string) (*FilesRepo, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("FilesRepo - NewFilesRepo - os.MkdirAll: %w", err)
	}

	return &FilesRepo{root: root}, nil
}

func (r *FilesRepo) Save(_ context.Context, name string, data io.Reader) (int64, error) {
	path := r.path(name)

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("FilesRepo - Save - os.Create: %w", err)
	}

	written, err := io.Copy(file, data)
	if err != nil {
		file.Close()
		_ = os.Remove(path)

		return 0, fmt.Errorf("FilesRepo - Save - io.Copy: %w", err)
	}

	if err = file.Close(); err != nil {
		_ = os.Remove(path)

		return 0, fmt.Errorf("FilesRepo - Save - file.Close: %w", err)
	}

	return written, nil
}

func (r *FilesRepo) Open(_ context.Context, name string) (io.ReadCloser, error) {
	file, err := os.Open(r.path(name))
	if err != nil {
		return nil, fmt.Errorf("FilesRepo - Open - os.Open: %w", err)
	}

	return file, nil
}

// Remove is idempotent: removing a file that is already gone succeeds.
func (r *FilesRepo) Remove(_ context.Context, name string) error {
	err := os.Remove(r.path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("FilesRepo - Remove - os.Remove: %w", err)
	}

	return nil
}

// Health verifies the store directory is writable.
func (r *FilesRepo) Health(_ context.Context) error {
	probe := filepath.Join(r.root, ".health_check")

	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("FilesRepo - Health - os.WriteFile: %w", err)
	}

	_ = os.Remove(probe)

	return nil
}

// path confines the key to the store root.
func (r *FilesRepo) path(name string) string {
	return filepath.Join(r.root, filepath.Base(name))
}
