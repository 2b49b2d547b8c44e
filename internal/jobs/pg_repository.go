package jobs

import (
	"context"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

// Repository is the job store. Lookups of a missing row return an error
// wrapping sql.ErrNoRows; an insert that collides with another active job
// for the same title returns ErrActiveJobExists.
type Repository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, jobID string) (*models.Job, error)
	GetActiveByTitle(ctx context.Context, titleID int64) (*models.Job, error)
	GetLatestByTitle(ctx context.Context, titleID int64) (*models.Job, error)
	List(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error)
	MarkError(ctx context.Context, jobID, message string, at time.Time) error
	// ApplyProgress reports false when the row was left untouched because the
	// update carried a stale sequence number.
	ApplyProgress(ctx context.Context, update *models.ProgressUpdate) (bool, error)
	TouchLastWatched(ctx context.Context, jobID string, at time.Time) error
	UpsertTitle(ctx context.Context, title *models.TitleDetails) error
}
