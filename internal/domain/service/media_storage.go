package service

import (
	"context"
	"io"
)

// MediaStorage stores uploaded files such as portfolio images.
type MediaStorage interface {
	// Save writes the content under a new key derived from filename and returns the key.
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)

	// Delete removes the object stored under key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL of key.
	URL(key string) string
}
