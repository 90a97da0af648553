package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stadtwache/stadtwache-api/models"
)

// Local keeps files in a directory on disk
type Local struct {
	dir string
}

// NewLocal creates the upload directory if needed
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) path(name string) string {
	return filepath.Join(l.dir, name)
}

// Save writes r to a new file. Existing files are never overwritten.
func (l *Local) Save(_ context.Context, name string, r io.Reader, _ string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: file name %q", models.ErrInvalidInput, name)
	}
	f, err := os.OpenFile(l.path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(l.path(name))
		return err
	}
	return f.Close()
}

// Open returns the stored file
func (l *Local) Open(_ context.Context, name string) (io.ReadCloser, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("%w %q", ErrFileNotFound, name)
	}
	f, err := os.Open(l.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w %q", ErrFileNotFound, name)
		}
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w %q", ErrFileNotFound, name)
	}
	return f, nil
}

// Delete removes the stored file
func (l *Local) Delete(_ context.Context, name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w %q", ErrFileNotFound, name)
	}
	err := os.Remove(l.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w %q", ErrFileNotFound, name)
	}
	return err
}
