package releases

import (
	"context"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

type UseCase interface {
	// Search returns the parsed candidates for an IMDb id in feed order.
	Search(ctx context.Context, imdbID string) ([]*models.Release, error)
	// Choose picks one candidate: the best ranked in auto mode, the one with
	// releaseID in manual mode.
	Choose(ctx context.Context, imdbID, mode, releaseID, quality string) (*models.Release, error)
	ListForTitle(ctx context.Context, titleID int64, quality string) (*models.ReleaseList, error)
}
