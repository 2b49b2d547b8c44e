package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/internal/titles"
	"github.com/go-redis/redis/v8"
)

type titlesRedisRepo struct {
	redisClient *redis.Client
}

func NewTitlesRedisRepo(redisClient *redis.Client) titles.RedisRepository {
	return &titlesRedisRepo{redisClient: redisClient}
}

// GetTitle returns nil, nil on a cache miss.
func (r *titlesRedisRepo) GetTitle(ctx context.Context, key string) (*models.TitleDetails, error) {
	title := &models.TitleDetails{}
	if err := r.redisClient.Get(ctx, key).Scan(title); err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get title: %w", err)
	}
	return title, nil
}

func (r *titlesRedisRepo) SetTitle(ctx context.Context, key string, ttl time.Duration, title *models.TitleDetails) error {
	if err := r.redisClient.Set(ctx, key, title, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set title: %w", err)
	}
	return nil
}
