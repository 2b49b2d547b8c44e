package jobs

import (
	"context"
	"errors"

	"github.com/amankumarsingh77/reelfetch/internal/models"
)

var ErrActiveJobExists = errors.New("an active job already exists for this title")

type UseCase interface {
	RequestAcquisition(ctx context.Context, input *models.AcquisitionInput) (*models.AcquisitionResult, error)
	GetJobStatus(ctx context.Context, jobID string) (*models.Job, error)
	ListJobs(ctx context.Context, status string) (*models.JobList, error)
	ReportProgress(ctx context.Context, input *models.ProgressInput) (*models.ProgressResult, error)
}
