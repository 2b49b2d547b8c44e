package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/jobs"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
)

const uniqueViolation = "23505"

type jobsRepo struct {
	db *sqlx.DB
}

func NewJobsRepo(db *sqlx.DB) jobs.Repository {
	return &jobsRepo{db: db}
}

func (r *jobsRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	created := &models.Job{}
	if err := r.db.QueryRowxContext(
		ctx,
		createJobQuery,
		job.JobID,
		job.TitleID,
		job.Status,
		job.ReleaseTitle,
		job.ReleaseID,
		job.Quality,
		job.CreatedAt,
	).StructScan(created); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, jobs.ErrActiveJobExists
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

func (r *jobsRepo) GetByID(ctx context.Context, jobID string) (*models.Job, error) {
	job := &models.Job{}
	if err := r.db.GetContext(ctx, job, getJobByIDQuery, jobID); err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}
	return job, nil
}

func (r *jobsRepo) GetActiveByTitle(ctx context.Context, titleID int64) (*models.Job, error) {
	job := &models.Job{}
	if err := r.db.GetContext(ctx, job, getActiveJobByTitleQuery, titleID); err != nil {
		return nil, fmt.Errorf("failed to get active job for title %d: %w", titleID, err)
	}
	return job, nil
}

func (r *jobsRepo) GetLatestByTitle(ctx context.Context, titleID int64) (*models.Job, error) {
	job := &models.Job{}
	if err := r.db.GetContext(ctx, job, getLatestJobByTitleQuery, titleID); err != nil {
		return nil, fmt.Errorf("failed to get latest job for title %d: %w", titleID, err)
	}
	return job, nil
}

func (r *jobsRepo) List(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error) {
	list := make([]*models.Job, 0, limit)
	var err error
	if status == "" {
		err = r.db.SelectContext(ctx, &list, listJobsQuery, limit)
	} else {
		err = r.db.SelectContext(ctx, &list, listJobsByStatusQuery, status, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return list, nil
}

func (r *jobsRepo) MarkError(ctx context.Context, jobID, message string, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, markJobErrorQuery, jobID, message, at); err != nil {
		return fmt.Errorf("failed to mark job %s as error: %w", jobID, err)
	}
	return nil
}

func (r *jobsRepo) ApplyProgress(ctx context.Context, u *models.ProgressUpdate) (bool, error) {
	var (
		query string
		args  []interface{}
	)
	switch u.Status {
	case models.JobStatusReady:
		query = applyReadyQuery
		args = []interface{}{u.JobID, u.Progress, u.ErrorMessage, u.R2Key, u.FileSize, u.ReadyAt, u.ExpiresAt, u.UpdatedAt, u.Seq}
	case models.JobStatusError:
		query = applyErrorQuery
		args = []interface{}{u.JobID, u.ErrorMessage, u.UpdatedAt, u.Seq}
	default:
		query = applyProgressQuery
		args = []interface{}{u.JobID, u.Status, u.Progress, u.UpdatedAt, u.Seq}
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to apply progress to job %s: %w", u.JobID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (r *jobsRepo) TouchLastWatched(ctx context.Context, jobID string, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, touchLastWatchedQuery, jobID, at); err != nil {
		return fmt.Errorf("failed to touch last_watched_at for job %s: %w", jobID, err)
	}
	return nil
}

func (r *jobsRepo) UpsertTitle(ctx context.Context, title *models.TitleDetails) error {
	if _, err := r.db.ExecContext(
		ctx,
		upsertTitleQuery,
		title.ID,
		title.Title,
		title.PosterPath,
		title.IMDbID,
		title.ReleaseYear(),
	); err != nil {
		return fmt.Errorf("failed to upsert title %d: %w", title.ID, err)
	}
	return nil
}
