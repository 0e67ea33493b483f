// Package storage provides the blob store implementation backing product images.
package storage

import (
	"context"
	"io"
	"strings"

	"mandi/config"
	"mandi/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Drivers registered for blob.OpenBucket URL schemes.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the configured bucket and registers its shutdown
// with the application lifecycle.
func NewBlobStorage(lc fx.Lifecycle, cfg *config.Config) (service.ImageStorage, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.Storage.BucketURL)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the image payload under the given key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Abort the write so no partial object is committed.
		_ = writer.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "commit %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a previously stored image. Missing objects are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}
