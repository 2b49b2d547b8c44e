package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/amankumarsingh77/reelfetch/internal/config"
	"github.com/amankumarsingh77/reelfetch/internal/jobs"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/internal/stream"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/pkg/errors"
)

const defaultContentType = "video/mp4"

var contentTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".mkv":  "video/x-matroska",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".ts":   "video/mp2t",
}

type streamUC struct {
	cfg      *config.Config
	jobsRepo jobs.Repository
	awsRepo  stream.AWSRepository
	logger   logger.Logger
	now      func() time.Time
}

func NewStreamUseCase(cfg *config.Config, jobsRepo jobs.Repository, awsRepo stream.AWSRepository, log logger.Logger) stream.UseCase {
	return &streamUC{
		cfg:      cfg,
		jobsRepo: jobsRepo,
		awsRepo:  awsRepo,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *streamUC) ResolveStream(ctx context.Context, id string) (*models.StreamDescriptor, error) {
	id = strings.TrimSpace(id)
	var (
		job *models.Job
		err error
	)
	switch {
	case utils.IsJobID(id):
		job, err = s.jobsRepo.GetByID(ctx, id)
	default:
		titleID, ok := utils.ParseTitleID(id)
		if !ok {
			return nil, httpErrors.NewBadRequestError("invalid id: expected a title id or a job id")
		}
		job, err = s.jobsRepo.GetLatestByTitle(ctx, titleID)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httpErrors.NewNotFoundError("no job found")
		}
		s.logger.Errorf("ResolveStream - lookup error: %v", err)
		return nil, errors.Wrap(err, "streamUC.ResolveStream.lookup")
	}
	if job.Status != models.JobStatusReady {
		return nil, httpErrors.NewBadRequestError(fmt.Sprintf("stream not ready (status: %s)", job.Status))
	}

	info, err := s.head(ctx, job)
	if err != nil {
		return nil, err
	}
	s.touch(ctx, job.JobID)

	return &models.StreamDescriptor{
		JobID:       job.JobID,
		StreamURL:   strings.TrimRight(s.cfg.Server.PublicURL, "/") + "/stream/" + job.JobID,
		ContentType: info.ContentType,
		FileSize:    info.Size,
		ExpiresAt:   job.ExpiresAt,
	}, nil
}

func (s *streamUC) ServeStream(ctx context.Context, jobID, rangeHeader string, headOnly bool) (*models.StreamBody, error) {
	if !utils.IsJobID(jobID) {
		return nil, httpErrors.NewBadRequestError("invalid job id")
	}
	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httpErrors.NewNotFoundError("job not found")
		}
		s.logger.Errorf("ServeStream - GetByID error: %v", err)
		return nil, errors.Wrap(err, "streamUC.ServeStream.GetByID")
	}
	if job.Status != models.JobStatusReady {
		return nil, httpErrors.NewNotFoundError(fmt.Sprintf("stream not available (status: %s)", job.Status))
	}

	info, err := s.head(ctx, job)
	if err != nil {
		return nil, err
	}

	body := &models.StreamBody{
		ContentType:   info.ContentType,
		ContentLength: info.Size,
		TotalSize:     info.Size,
		Start:         0,
		End:           info.Size - 1,
	}
	byteRange, partial, unsatisfiable := ParseRange(rangeHeader, info.Size)
	if unsatisfiable {
		return nil, &stream.RangeNotSatisfiableError{Size: info.Size}
	}
	requested := ""
	if partial {
		body.Partial = true
		body.Start = byteRange.Start
		body.End = byteRange.End
		body.ContentLength = byteRange.Length()
		requested = byteRange.Header()
	}
	if headOnly {
		return body, nil
	}

	reader, err := s.awsRepo.GetObject(ctx, s.cfg.S3.Bucket, *job.R2Key, requested)
	if err != nil {
		if errors.Is(err, stream.ErrObjectNotFound) {
			return nil, httpErrors.NewStorageError("stored file is missing")
		}
		s.logger.Errorf("ServeStream - GetObject error: %v", err)
		return nil, httpErrors.NewStorageError("failed to read stored file")
	}
	body.Body = reader
	s.touch(ctx, job.JobID)
	return body, nil
}

// head checks the stored object of a ready job and fills in size and type.
func (s *streamUC) head(ctx context.Context, job *models.Job) (*models.ObjectInfo, error) {
	if job.R2Key == nil || *job.R2Key == "" {
		s.logger.Errorf("job %s is ready without a storage key", job.JobID)
		return nil, httpErrors.NewStorageError("ready job has no stored file")
	}
	info, err := s.awsRepo.HeadObject(ctx, s.cfg.S3.Bucket, *job.R2Key)
	if err != nil {
		if errors.Is(err, stream.ErrObjectNotFound) {
			s.logger.Errorf("job %s is ready but %s is missing from storage", job.JobID, *job.R2Key)
			return nil, httpErrors.NewStorageError("stored file is missing")
		}
		s.logger.Errorf("HeadObject(%s) error: %v", *job.R2Key, err)
		return nil, httpErrors.NewStorageError("failed to check stored file")
	}
	if info.Size <= 0 && job.FileSize != nil {
		info.Size = *job.FileSize
	}
	if info.ContentType == "" || info.ContentType == "application/octet-stream" || info.ContentType == "binary/octet-stream" {
		info.ContentType = contentTypeOf(*job.R2Key)
	}
	return info, nil
}

func (s *streamUC) touch(ctx context.Context, jobID string) {
	if err := s.jobsRepo.TouchLastWatched(ctx, jobID, s.now()); err != nil {
		s.logger.Warnf("TouchLastWatched(%s) error: %v", jobID, err)
	}
}

func contentTypeOf(key string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(key))]; ok {
		return ct
	}
	return defaultContentType
}
