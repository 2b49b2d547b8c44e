package stream

import (
	"context"
	"errors"
	"io"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

var ErrObjectNotFound = errors.New("object not found")

type AWSRepository interface {
	HeadObject(ctx context.Context, bucket, key string) (*models.ObjectInfo, error)
	// GetObject fetches the whole object when byteRange is empty, otherwise
	// the span named by an HTTP Range value such as "bytes=0-99".
	GetObject(ctx context.Context, bucket, key, byteRange string) (io.ReadCloser, error)
}
