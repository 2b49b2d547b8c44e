package jobs

import (
	"context"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

// RedisRepository is the download work queue.
type RedisRepository interface {
	Publish(ctx context.Context, key string, item *models.WorkItem) error
}
