package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type stubHistoryUC struct {
	seen *utils.Pagination
}

func (s *stubHistoryUC) ListHistory(_ context.Context, pq *utils.Pagination) (*models.HistoryList, error) {
	s.seen = pq
	watched := time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)
	return &models.HistoryList{
		Movies: []*models.HistoryEntry{{
			TitleID: 603, Title: "The Matrix", PosterPath: "/matrix.jpg",
			LastWatchedAt: watched, JobID: "job_a", Status: models.JobStatusReady,
		}},
		Total: 1,
	}, nil
}

func serve(uc *stubHistoryUC, target string) *httptest.ResponseRecorder {
	e := echo.New()
	MapHistoryRoutes(e.Group("/history"), NewHistoryHandler(uc, logger.NewNopLogger()))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestListHistoryHandler(t *testing.T) {
	uc := &stubHistoryUC{}
	rec := serve(uc, "/history?limit=5&offset=0")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, uc.seen.Limit)
	assert.JSONEq(t, `{"movies":[{"title_id":603,"title":"The Matrix","poster_path":"/matrix.jpg",
		"last_watched_at":"2026-03-02T20:00:00Z","job_id":"job_a","status":"ready"}],"total":1}`, rec.Body.String())
}

func TestListHistoryHandlerDefaults(t *testing.T) {
	uc := &stubHistoryUC{}
	rec := serve(uc, "/history")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, uc.seen.Limit)
	assert.Equal(t, 0, uc.seen.Offset)
}

func TestListHistoryHandlerInvalidPagination(t *testing.T) {
	for _, q := range []string{"limit=0", "limit=500", "offset=-3", "limit=ten"} {
		uc := &stubHistoryUC{}
		rec := serve(uc, "/history?"+q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.Contains(t, rec.Body.String(), `"INVALID_INPUT"`, q)
		assert.Nil(t, uc.seen, q)
	}
}
