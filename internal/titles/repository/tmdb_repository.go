package repository

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/internal/titles"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type tmdbRepo struct {
	client *resty.Client
}

type tmdbMovie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
	IMDbID      string `json:"imdb_id"`
	ExternalIDs struct {
		IMDbID string `json:"imdb_id"`
	} `json:"external_ids"`
}

func NewTMDBRepo(cfg config.TMDBConfig) titles.TMDBRepository {
	client := resty.NewWithClient(&http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	// v4 read access tokens are JWTs, v3 keys go in the query string.
	if strings.Count(cfg.APIKey, ".") == 2 {
		client.SetAuthToken(cfg.APIKey)
	} else if cfg.APIKey != "" {
		client.SetQueryParam("api_key", cfg.APIKey)
	}
	return &tmdbRepo{client: client}
}

func (t *tmdbRepo) GetMovie(ctx context.Context, titleID int64) (*models.TitleDetails, error) {
	var movie tmdbMovie
	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(titleID, 10)).
		SetQueryParam("append_to_response", "external_ids").
		SetResult(&movie).
		Get("/movie/{id}")
	if err != nil {
		return nil, fmt.Errorf("tmdb request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, titles.ErrTitleNotFound
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("tmdb movie %d failed: status %d", titleID, resp.StatusCode())
	}

	imdbID := movie.IMDbID
	if imdbID == "" {
		imdbID = movie.ExternalIDs.IMDbID
	}
	return &models.TitleDetails{
		ID:          movie.ID,
		Title:       movie.Title,
		Overview:    movie.Overview,
		PosterPath:  movie.PosterPath,
		ReleaseDate: movie.ReleaseDate,
		IMDbID:      imdbID,
	}, nil
}
