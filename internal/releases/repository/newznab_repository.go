package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/internal/releases"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

type newznabRepo struct {
	cfg     config.NewznabConfig
	client  *resty.Client
	limiter *rate.Limiter
}

func NewNewznabRepo(cfg config.NewznabConfig) releases.SearchRepository {
	client := resty.NewWithClient(&http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/rss+xml, application/xml")

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return &newznabRepo{cfg: cfg, client: client, limiter: limiter}
}

func (n *newznabRepo) SearchByIMDb(ctx context.Context, imdbID string) ([]*models.Release, error) {
	id := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(imdbID)), "tt")
	if id == "" {
		return nil, fmt.Errorf("newznab search: empty imdb id")
	}
	if n.limiter != nil {
		if err := n.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("newznab rate limit: %w", err)
		}
	}

	params := map[string]string{
		"t":      "movie",
		"imdbid": id,
		"apikey": n.cfg.APIKey,
		"o":      "xml",
	}
	if len(n.cfg.Categories) > 0 {
		params["cat"] = strings.Join(n.cfg.Categories, ",")
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/api")
	if err != nil {
		return nil, fmt.Errorf("newznab request: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("newznab error: status %d", resp.StatusCode())
	}
	return ParseFeed(resp.Body())
}
