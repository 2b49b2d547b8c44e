package repository

import (
	"context"
	"fmt"

	"github.com/amankumarsingh77/reelfetch/internal/history"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/jmoiron/sqlx"
)

type historyRepo struct {
	db *sqlx.DB
}

func NewHistoryRepo(db *sqlx.DB) history.Repository {
	return &historyRepo{db: db}
}

func (r *historyRepo) List(ctx context.Context, limit, offset int) ([]*models.HistoryEntry, error) {
	entries := make([]*models.HistoryEntry, 0, limit)
	if err := r.db.SelectContext(ctx, &entries, listHistoryQuery, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list watch history: %w", err)
	}
	return entries, nil
}

func (r *historyRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, countHistoryQuery); err != nil {
		return 0, fmt.Errorf("failed to count watch history: %w", err)
	}
	return total, nil
}
