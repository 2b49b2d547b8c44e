package usecase

import (
	"context"

	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/amankumarsingh77/reelfetch/internal/history"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
)

type historyUC struct {
	cfg         *config.Config
	historyRepo history.Repository
	logger      logger.Logger
}

func NewHistoryUseCase(cfg *config.Config, historyRepo history.Repository, log logger.Logger) history.UseCase {
	return &historyUC{cfg: cfg, historyRepo: historyRepo, logger: log}
}

func (u *historyUC) ListHistory(ctx context.Context, pq *utils.Pagination) (*models.HistoryList, error) {
	total, err := u.historyRepo.Count(ctx)
	if err != nil {
		u.logger.Errorf("ListHistory - Count error: %v", err)
		return nil, httpErrors.NewInternalServerError("failed to load watch history")
	}
	if total == 0 || pq.GetOffset() >= total {
		return &models.HistoryList{Movies: []*models.HistoryEntry{}, Total: total}, nil
	}

	entries, err := u.historyRepo.List(ctx, pq.GetLimit(), pq.GetOffset())
	if err != nil {
		u.logger.Errorf("ListHistory - List error: %v", err)
		return nil, httpErrors.NewInternalServerError("failed to load watch history")
	}
	return &models.HistoryList{Movies: entries, Total: total}, nil
}
