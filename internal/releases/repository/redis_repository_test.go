package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleasesRedisRepo(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewReleasesRedisRepo(client)
	ctx := context.Background()

	got, err := repo.GetReleases(ctx, "releases:tt1")
	require.NoError(t, err)
	assert.Nil(t, got)

	list := []*models.Release{{ID: "a", Title: "A.1080p", Size: 10, Quality: "1080p"}}
	require.NoError(t, repo.SetReleases(ctx, "releases:tt1", time.Minute, list))

	got, err = repo.GetReleases(ctx, "releases:tt1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "1080p", got[0].Quality)

	mr.FastForward(2 * time.Minute)
	got, err = repo.GetReleases(ctx, "releases:tt1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
