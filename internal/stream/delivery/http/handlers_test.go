package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/internal/stream"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

var payload = bytes.Repeat([]byte("0123456789"), 100)

// stubStreamUC serves a fixed 1000 byte object for job_ready.
type stubStreamUC struct{}

func (stubStreamUC) ResolveStream(_ context.Context, id string) (*models.StreamDescriptor, error) {
	if id != "603" {
		return nil, httpErrors.NewBadRequestError("stream not ready (status: downloading)")
	}
	return &models.StreamDescriptor{JobID: "job_ready", StreamURL: "/stream/job_ready", ContentType: "video/mp4", FileSize: 1000}, nil
}

func (stubStreamUC) ServeStream(_ context.Context, jobID, rangeHeader string, headOnly bool) (*models.StreamBody, error) {
	if jobID != "job_ready" {
		return nil, httpErrors.NewNotFoundError("stream not available (status: downloading)")
	}
	body := &models.StreamBody{ContentType: "video/mp4", ContentLength: 1000, TotalSize: 1000, End: 999}
	switch rangeHeader {
	case "bytes=200-299":
		body.Partial, body.Start, body.End, body.ContentLength = true, 200, 299, 100
	case "bytes=900-":
		body.Partial, body.Start, body.End, body.ContentLength = true, 900, 999, 100
	case "bytes=5000-":
		return nil, &stream.RangeNotSatisfiableError{Size: 1000}
	}
	if !headOnly {
		body.Body = io.NopCloser(bytes.NewReader(payload[body.Start : body.End+1]))
	}
	return body, nil
}

func serve(method, target, rangeHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	MapStreamRoutes(e.Group("/titles"), e.Group("/stream"), NewStreamHandler(stubStreamUC{}, logger.NewNopLogger()))
	req := httptest.NewRequest(method, target, nil)
	if rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServeStreamPartial(t *testing.T) {
	rec := serve(http.MethodGet, "/stream/job_ready", "bytes=200-299")
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bytes 200-299/1000", rec.Header().Get("Content-Range"))
	assert.Equal(t, "100", rec.Header().Get("Content-Length"))
	assert.Equal(t, "bytes", rec.Header().Get("Accept-Ranges"))
	assert.Equal(t, payload[200:300], rec.Body.Bytes())

	rec = serve(http.MethodGet, "/stream/job_ready", "bytes=900-")
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bytes 900-999/1000", rec.Header().Get("Content-Range"))
	assert.Equal(t, "100", rec.Header().Get("Content-Length"))
}

func TestServeStreamFull(t *testing.T) {
	rec := serve(http.MethodGet, "/stream/job_ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1000", rec.Header().Get("Content-Length"))
	assert.Equal(t, "bytes", rec.Header().Get("Accept-Ranges"))
	assert.Equal(t, "video/mp4", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Content-Range"))
	assert.Len(t, rec.Body.Bytes(), 1000)
}

func TestServeStreamHead(t *testing.T) {
	rec := serve(http.MethodHead, "/stream/job_ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1000", rec.Header().Get("Content-Length"))
	assert.Zero(t, rec.Body.Len())
}

func TestServeStreamUnsatisfiable(t *testing.T) {
	rec := serve(http.MethodGet, "/stream/job_ready", "bytes=5000-")
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, rec.Code)
	assert.Equal(t, "bytes */1000", rec.Header().Get("Content-Range"))
	assert.Zero(t, rec.Body.Len())
}

func TestServeStreamNotReady(t *testing.T) {
	rec := serve(http.MethodGet, "/stream/job_downloading", "bytes=0-")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"stream not available (status: downloading)"}}`, rec.Body.String())
}

func TestResolveStreamHandler(t *testing.T) {
	rec := serve(http.MethodGet, "/titles/603/stream", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"job_id":"job_ready","stream_url":"/stream/job_ready","content_type":"video/mp4","file_size":1000}`, rec.Body.String())

	rec = serve(http.MethodGet, "/titles/550/stream", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "stream not ready (status: downloading)")
}
