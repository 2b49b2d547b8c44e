package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/internal/releases"
	"github.com/go-redis/redis/v8"
)

type releasesRedisRepo struct {
	redisClient *redis.Client
}

func NewReleasesRedisRepo(redisClient *redis.Client) releases.RedisRepository {
	return &releasesRedisRepo{redisClient: redisClient}
}

// GetReleases returns nil, nil on a cache miss.
func (r *releasesRedisRepo) GetReleases(ctx context.Context, key string) ([]*models.Release, error) {
	data, err := r.redisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get releases: %w", err)
	}
	var list []*models.Release
	if err = json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal releases: %w", err)
	}
	return list, nil
}

func (r *releasesRedisRepo) SetReleases(ctx context.Context, key string, ttl time.Duration, list []*models.Release) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal releases: %w", err)
	}
	if err = r.redisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set releases: %w", err)
	}
	return nil
}
