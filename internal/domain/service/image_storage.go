package service

import (
	"context"
	"io"
)

// ImageStorage defines the interface for the binary image store backing
// product photos. Implementations return a publicly reachable URL for the
// stored object.
type ImageStorage interface {
	// Upload stores the image payload under the given key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes a previously stored image. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
