package history

import (
	"context"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*models.HistoryEntry, error)
	Count(ctx context.Context) (int, error)
}
