package roster

import (
	"context"
	"time"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
	"rosterbid/internal/logx"
)

// JobService is the write boundary of the job roster.
type JobService struct {
	repo             jobRepository
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewJobService creates a JobService.
func NewJobService(repo jobRepository, logger logx.Logger, timeout time.Duration) *JobService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &JobService{repo: repo, logger: logger, operationTimeout: timeout}
}

// Get returns one job or apperr.ErrNotFound.
func (s *JobService) Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Job, error) {
	if !scope.Valid() || id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	j, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, apperr.ErrNotFound
	}
	return j, nil
}

// List returns the site's jobs ordered by ID.
func (s *JobService) List(ctx context.Context, scope domain.Scope) ([]domain.Job, error) {
	if !scope.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()
	return s.repo.List(ctx, scope)
}

// Create validates and stores a new job.
func (s *JobService) Create(ctx context.Context, j *domain.Job) (int64, error) {
	scope := domain.Scope{CompanyID: j.CompanyID, SiteID: j.SiteID}
	if !scope.Valid() {
		return 0, apperr.ErrInvalid
	}
	if j.Label == "" || !domain.ValidateStartTime(j.StartTime) || !domain.ValidateWeekDays(j.WeekDays) {
		return 0, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, j)
	if err != nil {
		return 0, err
	}

	s.logger.Info("job created",
		logx.String("event", "job_created"),
		logx.Int64("job_id", id),
		logx.String("label", j.Label),
		logx.Bool("airport", j.Airport),
		logx.Int64("company_id", j.CompanyID),
		logx.Int64("site_id", j.SiteID),
	)
	return id, nil
}

// Delete removes a job. Preference lists referencing it are left intact
// and filtered out by the cleaning step on the next resolution.
func (s *JobService) Delete(ctx context.Context, scope domain.Scope, id int64) error {
	if !scope.Valid() || id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	ok, err := s.repo.Delete(ctx, scope, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}

	s.logger.Info("job deleted",
		logx.String("event", "job_deleted"),
		logx.Int64("job_id", id),
		logx.Int64("company_id", scope.CompanyID),
		logx.Int64("site_id", scope.SiteID),
	)
	return nil
}
