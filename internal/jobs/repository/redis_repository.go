package repository

import (
	"context"
	"fmt"

	"github.com/amankumarsingh77/reelfetch/internal/jobs"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/go-redis/redis/v8"
)

type jobsRedisRepo struct {
	redisClient *redis.Client
}

func NewJobsRedisRepo(redisClient *redis.Client) jobs.RedisRepository {
	return &jobsRedisRepo{redisClient: redisClient}
}

// Publish pushes onto the head of the list; the worker pops from the tail.
func (r *jobsRedisRepo) Publish(ctx context.Context, key string, item *models.WorkItem) error {
	if err := r.redisClient.LPush(ctx, key, item).Err(); err != nil {
		return fmt.Errorf("failed to publish job %s: %w", item.JobID, err)
	}
	return nil
}
