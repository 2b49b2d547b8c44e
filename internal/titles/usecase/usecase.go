package usecase

import (
	"context"
	"fmt"

	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/internal/titles"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/pkg/errors"
)

const titleCachePrefix = "title:"

type titlesUC struct {
	cfg       *config.Config
	tmdbRepo  titles.TMDBRepository
	redisRepo titles.RedisRepository
	logger    logger.Logger
}

func NewTitlesUseCase(cfg *config.Config, tmdbRepo titles.TMDBRepository, redisRepo titles.RedisRepository, log logger.Logger) titles.UseCase {
	return &titlesUC{cfg: cfg, tmdbRepo: tmdbRepo, redisRepo: redisRepo, logger: log}
}

func (u *titlesUC) GetDetails(ctx context.Context, titleID int64) (*models.TitleDetails, error) {
	if titleID <= 0 {
		return nil, httpErrors.NewBadRequestError("invalid title id")
	}
	key := fmt.Sprintf("%s%d", titleCachePrefix, titleID)

	cached, err := u.redisRepo.GetTitle(ctx, key)
	if err != nil {
		u.logger.Warnf("GetDetails - GetTitle cache error: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	details, err := u.tmdbRepo.GetMovie(ctx, titleID)
	if err != nil {
		if errors.Is(err, titles.ErrTitleNotFound) {
			return nil, httpErrors.NewNotFoundError(fmt.Sprintf("title %d not found", titleID))
		}
		u.logger.Errorf("GetDetails - GetMovie error: %v", err)
		return nil, httpErrors.NewUpstreamError("metadata lookup failed")
	}

	if err = u.redisRepo.SetTitle(ctx, key, u.cfg.Redis.TitleCacheTTL, details); err != nil {
		u.logger.Warnf("GetDetails - SetTitle cache error: %v", err)
	}
	return details, nil
}

func (u *titlesUC) ResolveIMDbID(ctx context.Context, titleID int64) (string, error) {
	details, err := u.GetDetails(ctx, titleID)
	if err != nil {
		return "", err
	}
	if details.IMDbID == "" {
		return "", httpErrors.NewNotFoundError(fmt.Sprintf("title %d has no imdb id", titleID))
	}
	return details.IMDbID, nil
}
