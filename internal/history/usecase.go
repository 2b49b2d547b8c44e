package history

import (
	"context"

	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
)

type UseCase interface {
	ListHistory(ctx context.Context, pq *utils.Pagination) (*models.HistoryList, error)
}
