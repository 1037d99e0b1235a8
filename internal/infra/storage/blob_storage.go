// Package storage implements media storage on gocloud.dev blob buckets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"eventhub/config"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered bucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const portfolioPrefix = "vendor_portfolio"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	now           func() time.Time
}

// Params holds dependencies for the media storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Media storage initialized", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.MediaStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}
}

// Save stores r under vendor_portfolio/<yyyy>/<mm>/<uuid><ext>.
func (s *blobStorage) Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	now := s.now().UTC()
	key := path.Join(portfolioPrefix, now.Format("2006"), now.Format("01"), uuid.NewString()+strings.ToLower(path.Ext(filename)))

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit blob")
	}

	return key, nil
}

// Delete removes key. A missing object is treated as already deleted.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

// URL joins the public base URL and key. Without a base URL the key is returned as a path.
func (s *blobStorage) URL(key string) string {
	if key == "" {
		return ""
	}
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}
