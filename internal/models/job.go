package models

import (
	"encoding/json"
	"time"
)

type JobStatus string

const (
	JobStatusQueued      JobStatus = "queued"
	JobStatusStarting    JobStatus = "starting"
	JobStatusDownloading JobStatus = "downloading"
	JobStatusPreparing   JobStatus = "preparing"
	JobStatusReady       JobStatus = "ready"
	JobStatusError       JobStatus = "error"
	JobStatusDeleted     JobStatus = "deleted"
)

// ActiveStatuses is the set in which a job still owns its title: no new
// acquisition is started while one of these exists.
var ActiveStatuses = []JobStatus{
	JobStatusQueued,
	JobStatusStarting,
	JobStatusDownloading,
	JobStatusPreparing,
	JobStatusReady,
	JobStatusError,
}

func IsValidStatus(s string) bool {
	switch JobStatus(s) {
	case JobStatusQueued, JobStatusStarting, JobStatusDownloading, JobStatusPreparing,
		JobStatusReady, JobStatusError, JobStatusDeleted:
		return true
	}
	return false
}

func (s JobStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if a == s {
			return true
		}
	}
	return false
}

type Job struct {
	JobID         string     `json:"job_id" db:"job_id"`
	TitleID       int64      `json:"title_id" db:"title_id"`
	Status        JobStatus  `json:"status" db:"status"`
	Progress      *float64   `json:"progress" db:"progress"`
	ReleaseTitle  string     `json:"release_title" db:"release_title"`
	ReleaseID     string     `json:"release_id" db:"release_id"`
	Quality       string     `json:"quality" db:"quality"`
	ErrorMessage  *string    `json:"error_message" db:"error_message"`
	R2Key         *string    `json:"r2_key" db:"r2_key"`
	FileSize      *int64     `json:"file_size" db:"file_size"`
	CallbackSeq   *int64     `json:"-" db:"callback_seq"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	ReadyAt       *time.Time `json:"ready_at" db:"ready_at"`
	ExpiresAt     *time.Time `json:"expires_at" db:"expires_at"`
	LastWatchedAt *time.Time `json:"last_watched_at" db:"last_watched_at"`
}

type JobList struct {
	Jobs []*Job `json:"jobs"`
}

// AcquisitionInput is the body of POST /titles/:id/fetch with the path id folded in.
type AcquisitionInput struct {
	TitleID   int64  `json:"-" validate:"required,gt=0"`
	Mode      string `json:"mode" validate:"required,oneof=auto manual"`
	ReleaseID string `json:"release_id" validate:"omitempty,lte=512"`
	Quality   string `json:"quality" validate:"omitempty,oneof=720p 1080p 4K"`
}

type AcquisitionResult struct {
	JobID  string    `json:"job_id"`
	Status JobStatus `json:"status"`
}

type ProgressInput struct {
	JobID        string   `json:"job_id" validate:"required"`
	Status       string   `json:"status" validate:"required"`
	Progress     *float64 `json:"progress" validate:"omitempty,gte=0,lte=100"`
	ErrorMessage *string  `json:"error_message" validate:"omitempty,lte=2000"`
	R2Key        *string  `json:"r2_key" validate:"omitempty,lte=1024"`
	FileSize     *int64   `json:"file_size" validate:"omitempty,gt=0"`
	Seq          *int64   `json:"seq" validate:"omitempty,gte=0"`
}

type ProgressResult struct {
	Success bool `json:"success"`
	Ignored bool `json:"ignored,omitempty"`
}

// ProgressUpdate is the row mutation derived from a callback.
type ProgressUpdate struct {
	JobID        string
	Status       JobStatus
	Progress     *float64
	ErrorMessage *string
	R2Key        *string
	FileSize     *int64
	Seq          *int64
	ReadyAt      *time.Time
	ExpiresAt    *time.Time
	UpdatedAt    time.Time
}

// WorkItem is the queue message consumed by the download worker.
type WorkItem struct {
	JobID         string    `json:"job_id"`
	TitleID       int64     `json:"title_id"`
	ReleaseID     string    `json:"release_id"`
	DownloadURL   string    `json:"download_url"`
	ReleaseTitle  string    `json:"release_title"`
	CallbackURL   string    `json:"callback_url,omitempty"`
	CallbackToken string    `json:"callback_token,omitempty"`
	EnqueuedAt    time.Time `json:"enqueued_at"`
}

func (w *WorkItem) MarshalBinary() ([]byte, error) {
	return json.Marshal(w)
}

func (w *WorkItem) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, w)
}
