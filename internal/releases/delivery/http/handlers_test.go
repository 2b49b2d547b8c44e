package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubReleasesUC struct {
	gotQuality string
}

func (s *stubReleasesUC) Search(context.Context, string) ([]*models.Release, error) { return nil, nil }

func (s *stubReleasesUC) Choose(context.Context, string, string, string, string) (*models.Release, error) {
	return nil, nil
}

func (s *stubReleasesUC) ListForTitle(_ context.Context, _ int64, quality string) (*models.ReleaseList, error) {
	s.gotQuality = quality
	return &models.ReleaseList{Releases: []*models.Release{{ID: "a", Score: 140}}, Total: 1}, nil
}

func TestListReleases(t *testing.T) {
	e := echo.New()
	uc := &stubReleasesUC{}
	MapReleasesRoutes(e.Group("/titles"), NewReleasesHandler(uc, logger.NewNopLogger()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/titles/603/releases?quality=4K", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"releases":[{"id":"a","title":"","size":0,"download_url":"","quality":"","resolution":"","codec":"","source":"","group":"","score":140}],"total":1}`, rec.Body.String())
	assert.Equal(t, "4K", uc.gotQuality)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/titles/abc/releases", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"INVALID_INPUT","message":"invalid title id"}}`, rec.Body.String())
}
