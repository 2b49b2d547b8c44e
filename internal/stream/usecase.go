package stream

import (
	"context"
	"fmt"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

// RangeNotSatisfiableError is returned when a range starts past the end of the object.
type RangeNotSatisfiableError struct {
	Size int64
}

func (e *RangeNotSatisfiableError) Error() string {
	return fmt.Sprintf("range not satisfiable for object of %d bytes", e.Size)
}

type UseCase interface {
	ResolveStream(ctx context.Context, id string) (*models.StreamDescriptor, error)
	// ServeStream opens the stored file of a ready job. With headOnly the
	// returned body carries headers only and Body is nil.
	ServeStream(ctx context.Context, jobID, rangeHeader string, headOnly bool) (*models.StreamBody, error)
}
