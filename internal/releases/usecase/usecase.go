package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/internal/releases"
	"github.com/amankumarsingh77/reelfetch/internal/titles"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

const (
	releaseCachePrefix = "releases:"
	searchTimeout      = 20 * time.Second

	ModeAuto   = "auto"
	ModeManual = "manual"
)

type releasesUC struct {
	cfg        *config.Config
	searchRepo releases.SearchRepository
	redisRepo  releases.RedisRepository
	titlesUC   titles.UseCase
	group      singleflight.Group
	logger     logger.Logger
}

func NewReleasesUseCase(
	cfg *config.Config,
	searchRepo releases.SearchRepository,
	redisRepo releases.RedisRepository,
	titlesUC titles.UseCase,
	log logger.Logger,
) releases.UseCase {
	return &releasesUC{
		cfg:        cfg,
		searchRepo: searchRepo,
		redisRepo:  redisRepo,
		titlesUC:   titlesUC,
		logger:     log,
	}
}

func (u *releasesUC) Search(ctx context.Context, imdbID string) ([]*models.Release, error) {
	key := releaseCachePrefix + imdbID
	cached, err := u.redisRepo.GetReleases(ctx, key)
	if err != nil {
		u.logger.Warnf("Search - GetReleases cache error: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	// The shared search outlives any single caller; each caller only waits
	// on its own context.
	ch := u.group.DoChan(key, func() (interface{}, error) {
		searchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.searchTimeout())
		defer cancel()
		found, err := u.searchRepo.SearchByIMDb(searchCtx, imdbID)
		if err != nil {
			return nil, err
		}
		if err := u.redisRepo.SetReleases(searchCtx, key, u.cfg.Redis.ReleaseCacheTTL, found); err != nil {
			u.logger.Warnf("Search - SetReleases cache error: %v", err)
		}
		return found, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "releasesUC.Search")
	case res = <-ch:
	}
	if res.Err != nil {
		u.logger.Errorf("Search - SearchByIMDb error: %v", res.Err)
		return nil, httpErrors.NewUpstreamError("release search failed")
	}
	if res.Shared {
		u.logger.Debugf("Search - shared in-flight search for %s", imdbID)
	}
	return res.Val.([]*models.Release), nil
}

func (u *releasesUC) searchTimeout() time.Duration {
	if u.cfg.Newznab.Timeout > 0 {
		return u.cfg.Newznab.Timeout
	}
	return searchTimeout
}

func (u *releasesUC) Choose(ctx context.Context, imdbID, mode, releaseID, quality string) (*models.Release, error) {
	found, err := u.Search(ctx, imdbID)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, httpErrors.NewNotFoundError("no releases found")
	}

	var chosen *models.Release
	switch mode {
	case ModeManual:
		chosen = SelectByID(found, releaseID)
		if chosen == nil {
			return nil, httpErrors.NewNotFoundError(fmt.Sprintf("release %s not found", releaseID))
		}
	default:
		chosen = SelectBest(found, quality)
	}
	return chosen, nil
}

func (u *releasesUC) ListForTitle(ctx context.Context, titleID int64, quality string) (*models.ReleaseList, error) {
	if quality != "" && quality != "720p" && quality != "1080p" && quality != "4K" {
		return nil, httpErrors.NewBadRequestError("invalid quality: must be one of 720p, 1080p, 4K")
	}
	imdbID, err := u.titlesUC.ResolveIMDbID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	found, err := u.Search(ctx, imdbID)
	if err != nil {
		return nil, err
	}
	ranked := Rank(found, quality)
	return &models.ReleaseList{Releases: ranked, Total: len(ranked)}, nil
}
