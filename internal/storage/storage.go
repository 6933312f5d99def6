// Package storage uploads listing photos to an object-storage bucket and
// knows how the bucket's public URLs are shaped.
package storage

import (
	"context"
	"io"
)

// ObjectStorage is the port the photo upload path talks to. URL is
// deterministic for a key whether or not the upload succeeded; callers that
// swallow upload errors can still persist the address the object would have.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	URL(key string) string
}
