package titles

import (
	"context"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

type UseCase interface {
	GetDetails(ctx context.Context, titleID int64) (*models.TitleDetails, error)
	ResolveIMDbID(ctx context.Context, titleID int64) (string, error)
}
