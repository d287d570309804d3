package service

import (
	"context"
	"io"
)

// Uploader is the binary object store the aggregate only ever sees as an
// opaque reference string.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
