package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewznabSearchByIMDb(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api", r.URL.Path)
		gotQuery = map[string]string{
			"t":      r.URL.Query().Get("t"),
			"imdbid": r.URL.Query().Get("imdbid"),
			"apikey": r.URL.Query().Get("apikey"),
			"cat":    r.URL.Query().Get("cat"),
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	repo := NewNewznabRepo(config.NewznabConfig{
		BaseURL:    srv.URL,
		APIKey:     "key",
		Categories: []string{"2000", "2040"},
		Timeout:    5 * time.Second,
	})

	releases, err := repo.SearchByIMDb(context.Background(), "tt0133093")
	require.NoError(t, err)
	assert.Len(t, releases, 3)
	assert.Equal(t, "movie", gotQuery["t"])
	assert.Equal(t, "0133093", gotQuery["imdbid"])
	assert.Equal(t, "key", gotQuery["apikey"])
	assert.Equal(t, "2000,2040", gotQuery["cat"])
}

func TestNewznabSearchUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	repo := NewNewznabRepo(config.NewznabConfig{BaseURL: srv.URL, Timeout: time.Second, RequestsPerSecond: 100})
	_, err := repo.SearchByIMDb(context.Background(), "tt0133093")
	assert.Error(t, err)

	_, err = repo.SearchByIMDb(context.Background(), "")
	assert.Error(t, err)
}
