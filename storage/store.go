package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/stadtwache/stadtwache-api/config"
)

// FileStore keeps uploaded files by their generated name
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}

// Backends selectable through UPLOAD_BACKEND
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// New builds the file store selected by the config
func New(ctx context.Context, conf *config.Config) (FileStore, error) {
	switch strings.ToLower(conf.UploadBackend) {
	case "", BackendLocal:
		return NewLocal(conf.UploadDir)
	case BackendS3:
		return NewS3(ctx, S3Options{
			Bucket:    conf.S3Bucket,
			Endpoint:  conf.S3Endpoint,
			AccessKey: conf.S3AccessKey,
			SecretKey: conf.S3SecretKey,
			Region:    conf.S3Region,
		})
	default:
		return nil, fmt.Errorf("unknown upload backend %q", conf.UploadBackend)
	}
}

// Uploader validates incoming files, names them and hands them to a FileStore
type Uploader struct {
	Store   FileStore
	BaseURL string
}

// Upload stores the content of r under a generated name and returns that name.
// The extension is checked before anything is written.
func (u Uploader) Upload(ctx context.Context, p Purpose, filename string, r io.Reader, contentType string) (string, error) {
	name, err := GenerateName(p, filename)
	if err != nil {
		return "", err
	}
	if err := u.Store.Save(ctx, name, r, contentType); err != nil {
		return "", err
	}
	return name, nil
}

// URL is where a stored file is served from
func (u Uploader) URL(name string) string {
	return strings.TrimRight(u.BaseURL, "/") + "/api/uploads/" + name
}
