package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidPath  = errors.New("invalid file path")
)

type FileStorage interface {
	// Upload stores the file and returns its storage key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file; the caller closes it
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file. Missing files are not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL of a stored key
	URL(path string) string

	Exists(ctx context.Context, path string) (bool, error)
}
