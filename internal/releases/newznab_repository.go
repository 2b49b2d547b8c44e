package releases

import (
	"context"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

// SearchRepository queries the Newznab indexer.
type SearchRepository interface {
	SearchByIMDb(ctx context.Context, imdbID string) ([]*models.Release, error)
}
