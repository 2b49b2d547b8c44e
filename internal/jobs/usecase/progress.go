package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/metrics"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/pkg/errors"
)

const (
	readyWindow           = 24 * time.Hour
	defaultFailureMessage = "download failed"
)

func (u *jobsUC) ReportProgress(ctx context.Context, input *models.ProgressInput) (*models.ProgressResult, error) {
	if input == nil {
		return nil, httpErrors.NewBadRequestError("invalid input: input is nil")
	}
	if err := utils.ValidateStruct(ctx, input); err != nil {
		u.logger.Errorf("ReportProgress - ValidateStruct error: %v", err)
		return nil, err
	}
	status := models.JobStatus(input.Status)
	switch status {
	case models.JobStatusStarting, models.JobStatusDownloading, models.JobStatusPreparing,
		models.JobStatusReady, models.JobStatusError:
	default:
		return nil, httpErrors.NewBadRequestError(fmt.Sprintf("invalid status: %s", input.Status))
	}

	job, err := u.jobsRepo.GetByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httpErrors.NewNotFoundError("job not found")
		}
		u.logger.Errorf("ReportProgress - GetByID error: %v", err)
		return nil, errors.Wrap(err, "jobsUC.ReportProgress.GetByID")
	}
	// A deleted job is terminal; late callbacks must not revive it.
	if job.Status == models.JobStatusDeleted {
		u.logger.Warnf("job %s: rejected %s callback for deleted job", input.JobID, status)
		return nil, httpErrors.NewNotFoundError("job has been deleted")
	}

	now := u.now()
	update := &models.ProgressUpdate{
		JobID:     input.JobID,
		Status:    status,
		Progress:  input.Progress,
		Seq:       input.Seq,
		UpdatedAt: now,
	}
	switch status {
	case models.JobStatusReady:
		if update.Progress == nil {
			full := 100.0
			update.Progress = &full
		}
		expires := now.Add(readyWindow)
		update.ReadyAt = &now
		update.ExpiresAt = &expires
		update.ErrorMessage = input.ErrorMessage
		update.R2Key = input.R2Key
		update.FileSize = input.FileSize
	case models.JobStatusError:
		message := defaultFailureMessage
		if input.ErrorMessage != nil && *input.ErrorMessage != "" {
			message = *input.ErrorMessage
		}
		update.ErrorMessage = &message
	}

	applied, err := u.jobsRepo.ApplyProgress(ctx, update)
	if err != nil {
		u.logger.Errorf("ReportProgress - ApplyProgress error: %v", err)
		return nil, errors.Wrap(err, "jobsUC.ReportProgress.ApplyProgress")
	}
	metrics.ProgressCallbacksTotal.WithLabelValues(string(status)).Inc()
	if !applied {
		u.logger.Infof("job %s: ignored stale %s callback (seq %d)", input.JobID, status, derefSeq(input.Seq))
		return &models.ProgressResult{Success: true, Ignored: true}, nil
	}
	u.logger.Debugf("job %s -> %s", input.JobID, status)
	return &models.ProgressResult{Success: true}, nil
}

func derefSeq(seq *int64) int64 {
	if seq == nil {
		return -1
	}
	return *seq
}
