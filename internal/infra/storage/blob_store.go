// Package storage implements blob persistence for uploaded product images.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers registered through the blob URL mux.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStore implements service.FileStore on top of a gocloud.dev bucket, so
// local disk, in-memory and GCS backends all work behind one URL scheme.
type blobStore struct {
	bucket    *blob.Bucket
	publicURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. Without a storage section an in-memory
// bucket is used, which is enough for development and tests.
func New(params Params) (service.FileStore, error) {
	bucketURL := "mem://"
	publicURL := ""
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
		publicURL = params.Config.Storage.PublicURL
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("blob storage opened", slog.String("bucket", bucketURL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

// Save writes the content under key and returns the URL clients use to fetch it.
func (s *blobStore) Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close writer for %s", key)
	}

	if s.publicURL == "" {
		return key, nil
	}

	return s.publicURL + "/" + key, nil
}

// Delete removes the blob under key. Missing keys are not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrapf(err, "failed to check blob %s", key)
	}
	if !exists {
		return nil
	}

	return errors.Wrapf(s.bucket.Delete(ctx, key), "failed to delete blob %s", key)
}
