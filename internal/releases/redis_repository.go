package releases

import (
	"context"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

type RedisRepository interface {
	GetReleases(ctx context.Context, key string) ([]*models.Release, error)
	SetReleases(ctx context.Context, key string, ttl time.Duration, releases []*models.Release) error
}
