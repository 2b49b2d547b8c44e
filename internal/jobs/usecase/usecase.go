package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/amankumarsingh77/reelfetch/internal/jobs"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/internal/releases"
	"github.com/amankumarsingh77/reelfetch/internal/titles"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/amankumarsingh77/reelfetch/pkg/metrics"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/pkg/errors"
)

const (
	listJobsLimit     = 50
	defaultQuality    = "1080p"
	modeManual        = "manual"
	compensateTimeout = 5 * time.Second
)

type jobsUC struct {
	cfg        *config.Config
	jobsRepo   jobs.Repository
	redisRepo  jobs.RedisRepository
	titlesUC   titles.UseCase
	releasesUC releases.UseCase
	logger     logger.Logger
	now        func() time.Time
}

func NewJobsUseCase(
	cfg *config.Config,
	jobsRepo jobs.Repository,
	redisRepo jobs.RedisRepository,
	titlesUC titles.UseCase,
	releasesUC releases.UseCase,
	log logger.Logger,
) jobs.UseCase {
	return &jobsUC{
		cfg:        cfg,
		jobsRepo:   jobsRepo,
		redisRepo:  redisRepo,
		titlesUC:   titlesUC,
		releasesUC: releasesUC,
		logger:     log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *jobsUC) RequestAcquisition(ctx context.Context, input *models.AcquisitionInput) (*models.AcquisitionResult, error) {
	if input == nil {
		return nil, httpErrors.NewBadRequestError("invalid input: input is nil")
	}
	if err := utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("RequestAcquisition - ValidateStruct error: %v", err)
		return nil, err
	}
	if input.Mode == modeManual && input.ReleaseID == "" {
		return nil, httpErrors.NewBadRequestError("release_id is required in manual mode")
	}
	if input.Quality == "" {
		input.Quality = defaultQuality
	}

	existing, err := u.jobsRepo.GetActiveByTitle(ctx, input.TitleID)
	switch {
	case err == nil:
		metrics.AcquisitionsTotal.WithLabelValues("existing").Inc()
		return &models.AcquisitionResult{JobID: existing.JobID, Status: existing.Status}, nil
	case !errors.Is(err, sql.ErrNoRows):
		u.logger.Errorf("RequestAcquisition - GetActiveByTitle error: %v", err)
		return nil, u.failed(errors.Wrap(err, "jobsUC.RequestAcquisition.GetActiveByTitle"))
	}

	details, err := u.titlesUC.GetDetails(ctx, input.TitleID)
	if err != nil {
		return nil, u.failed(err)
	}
	if details.IMDbID == "" {
		return nil, u.failed(httpErrors.NewNotFoundError(fmt.Sprintf("title %d has no imdb id", input.TitleID)))
	}
	if err = u.jobsRepo.UpsertTitle(ctx, details); err != nil {
		u.logger.Warnf("RequestAcquisition - UpsertTitle error: %v", err)
	}

	release, err := u.releasesUC.Choose(ctx, details.IMDbID, input.Mode, input.ReleaseID, input.Quality)
	if err != nil {
		return nil, u.failed(err)
	}

	now := u.now()
	job, err := u.jobsRepo.Create(ctx, &models.Job{
		JobID:        utils.NewJobID(),
		TitleID:      input.TitleID,
		Status:       models.JobStatusQueued,
		ReleaseTitle: release.Title,
		ReleaseID:    release.ID,
		Quality:      input.Quality,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, jobs.ErrActiveJobExists) {
		existing, err = u.jobsRepo.GetActiveByTitle(ctx, input.TitleID)
		if err != nil {
			u.logger.Errorf("RequestAcquisition - GetActiveByTitle after conflict error: %v", err)
			return nil, u.failed(errors.Wrap(err, "jobsUC.RequestAcquisition.GetActiveByTitle"))
		}
		metrics.AcquisitionsTotal.WithLabelValues("existing").Inc()
		return &models.AcquisitionResult{JobID: existing.JobID, Status: existing.Status}, nil
	}
	if err != nil {
		u.logger.Errorf("RequestAcquisition - Create error: %v", err)
		return nil, u.failed(errors.Wrap(err, "jobsUC.RequestAcquisition.Create"))
	}

	item, err := u.workItem(job, release.DownloadURL, now)
	if err != nil {
		u.logger.Errorf("RequestAcquisition - workItem error: %v", err)
		u.compensate(ctx, job.JobID, "failed to sign callback token")
		return nil, u.failed(errors.Wrap(err, "jobsUC.RequestAcquisition.workItem"))
	}
	if err = u.redisRepo.Publish(ctx, u.cfg.Redis.JobQueueKey, item); err != nil {
		u.logger.Errorf("RequestAcquisition - Publish error: %v", err)
		u.compensate(ctx, job.JobID, "failed to enqueue download")
		return nil, u.failed(errors.Wrap(err, "jobsUC.RequestAcquisition.Publish"))
	}

	u.logger.Infof("job %s queued for title %d with release %q", job.JobID, job.TitleID, job.ReleaseTitle)
	metrics.AcquisitionsTotal.WithLabelValues("created").Inc()
	return &models.AcquisitionResult{JobID: job.JobID, Status: models.JobStatusQueued}, nil
}

func (u *jobsUC) GetJobStatus(ctx context.Context, jobID string) (*models.Job, error) {
	if !utils.IsJobID(jobID) {
		return nil, httpErrors.NewBadRequestError("invalid job id")
	}
	job, err := u.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httpErrors.NewNotFoundError("job not found")
		}
		u.logger.Errorf("GetJobStatus - GetByID error: %v", err)
		return nil, errors.Wrap(err, "jobsUC.GetJobStatus.GetByID")
	}
	return job, nil
}

func (u *jobsUC) ListJobs(ctx context.Context, status string) (*models.JobList, error) {
	if status != "" && !models.IsValidStatus(status) {
		return nil, httpErrors.NewBadRequestError(fmt.Sprintf("invalid status filter: %s", status))
	}
	list, err := u.jobsRepo.List(ctx, models.JobStatus(status), listJobsLimit)
	if err != nil {
		u.logger.Errorf("ListJobs - List error: %v", err)
		return nil, errors.Wrap(err, "jobsUC.ListJobs.List")
	}
	return &models.JobList{Jobs: list}, nil
}

func (u *jobsUC) workItem(job *models.Job, downloadURL string, now time.Time) (*models.WorkItem, error) {
	item := &models.WorkItem{
		JobID:        job.JobID,
		TitleID:      job.TitleID,
		ReleaseID:    job.ReleaseID,
		DownloadURL:  downloadURL,
		ReleaseTitle: job.ReleaseTitle,
		CallbackURL:  u.cfg.Worker.CallbackURL,
		EnqueuedAt:   now,
	}
	if u.cfg.Worker.CallbackSecret != "" {
		token, err := utils.GenerateCallbackToken(job.JobID, u.cfg.Worker.CallbackSecret, u.cfg.Worker.TokenTTL)
		if err != nil {
			return nil, err
		}
		item.CallbackToken = token
	}
	return item, nil
}

// compensate marks a job that never reached the queue so it does not sit queued forever.
// It runs detached from the request, whose context may be what failed the publish.
func (u *jobsUC) compensate(ctx context.Context, jobID, message string) {
	markCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensateTimeout)
	defer cancel()
	if err := u.jobsRepo.MarkError(markCtx, jobID, message, u.now()); err != nil {
		u.logger.Errorf("RequestAcquisition - MarkError(%s) error: %v", jobID, err)
	}
}

func (u *jobsUC) failed(err error) error {
	metrics.AcquisitionsTotal.WithLabelValues("failed").Inc()
	return err
}
