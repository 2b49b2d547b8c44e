package models

import (
	"io"
	"time"
)

type StreamDescriptor struct {
	JobID       string     `json:"job_id"`
	StreamURL   string     `json:"stream_url"`
	ContentType string     `json:"content_type"`
	FileSize    int64      `json:"file_size"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ObjectInfo is the head of a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
	ETag        string
}

// StreamBody is a (possibly partial) object body ready to be copied to the client.
type StreamBody struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	TotalSize     int64
	Start         int64
	End           int64
	Partial       bool
}
