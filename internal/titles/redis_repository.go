package titles

import (
	"context"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

type RedisRepository interface {
	GetTitle(ctx context.Context, key string) (*models.TitleDetails, error)
	SetTitle(ctx context.Context, key string, ttl time.Duration, title *models.TitleDetails) error
}
