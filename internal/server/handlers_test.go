package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/amankumarsingh77/reelfetch/pkg/db/aws"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	s3Client, err := aws.NewAWSClient("http://127.0.0.1:1", "auto", "key", "secret")
	require.NoError(t, err)

	cfg := &config.Config{
		Server:  config.ServerConfig{PublicURL: "http://localhost:8080"},
		Worker:  config.WorkerConfig{CallbackSecret: "s3cret"},
		Metrics: config.MetricsConfig{Enabled: true},
	}
	s := NewServer(cfg, sqlx.NewDb(db, "sqlmock"), redisClient, s3Client, logger.NewNopLogger())
	require.NoError(t, s.MapHandlers(s.echo))
	return s.echo, mock
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndMetrics(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = do(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutesAreMounted(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/v1/jobs/603", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/jobs?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/history?limit=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/stream/603", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/v1/titles/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgressRequiresToken(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/v1/internal/progress", `{"job_id":"job_1","status":"downloading","progress":10}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"UNAUTHORIZED"`)
}

func TestHistoryEmpty(t *testing.T) {
	e, mock := newTestServer(t)
	mock.ExpectQuery(`SELECT COUNT\(DISTINCT title_id\) FROM jobs`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	rec := do(e, http.MethodGet, "/api/v1/history", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"movies":[],"total":0}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
