package service

import (
	"context"
	"io"
)

// FileStore abstracts blob storage for user-uploaded content such as
// product images.
type FileStore interface {
	// Save writes the content under key and returns a URL that can be
	// served back to clients.
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Delete removes the blob under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
