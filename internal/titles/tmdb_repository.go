package titles

import (
	"context"
	"errors"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

var ErrTitleNotFound = errors.New("title not found")

// TMDBRepository is the catalog metadata lookup.
type TMDBRepository interface {
	GetMovie(ctx context.Context, titleID int64) (*models.TitleDetails, error)
}
