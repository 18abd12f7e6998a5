package preference

import (
	"context"
	"time"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
	"rosterbid/internal/logx"
)

// Service is the write boundary of the preference store: driver submissions,
// administrator pins and the auto-assign toggle. Validation happens here so
// malformed state never reaches resolution.
type Service struct {
	repo             preferenceRepository
	drivers          driverReader
	jobs             jobReader
	tenants          tenantChecker
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates a preference Service. tenants may be nil to disable
// the registry check.
func NewService(repo preferenceRepository, drivers driverReader, jobs jobReader, tenants tenantChecker, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		drivers:          drivers,
		jobs:             jobs,
		tenants:          tenants,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) checkTenant(ctx context.Context, scope domain.Scope) error {
	if s.tenants == nil {
		return nil
	}
	active, err := s.tenants.SiteActive(ctx, scope)
	if err != nil {
		return err
	}
	if !active {
		return apperr.ErrConflict
	}
	return nil
}

// Submit appends a driver's ordered preference list. The list may be empty
// (clears the driver's standing preferences on the next resolution); it may
// not contain duplicates or jobs outside the scope. An unset submission
// time defaults to now.
func (s *Service) Submit(ctx context.Context, sub *domain.PreferenceSubmission) (int64, error) {
	scope := domain.Scope{CompanyID: sub.CompanyID, SiteID: sub.SiteID}
	if !scope.Valid() || sub.DriverID <= 0 {
		return 0, apperr.ErrInvalid
	}
	seen := make(map[int64]bool, len(sub.JobIDs))
	for _, jobID := range sub.JobIDs {
		if jobID <= 0 || seen[jobID] {
			return 0, apperr.ErrInvalid
		}
		seen[jobID] = true
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.checkTenant(ctx, scope); err != nil {
		return 0, err
	}

	d, err := s.drivers.Get(ctx, scope, sub.DriverID)
	if err != nil {
		return 0, err
	}
	if d == nil {
		return 0, apperr.ErrNotFound
	}

	if len(sub.JobIDs) > 0 {
		jobs, err := s.jobs.List(ctx, scope)
		if err != nil {
			return 0, err
		}
		valid := make(map[int64]bool, len(jobs))
		for _, j := range jobs {
			valid[j.ID] = true
		}
		for _, jobID := range sub.JobIDs {
			if !valid[jobID] {
				return 0, apperr.ErrNotFound
			}
		}
	}

	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = s.now()
	}

	id, err := s.repo.InsertSubmission(ctx, sub)
	if err != nil {
		return 0, err
	}

	s.logger.Info("preferences submitted",
		logx.String("event", "preferences_submitted"),
		logx.Int64("driver_id", sub.DriverID),
		logx.Int("choices", len(sub.JobIDs)),
		logx.Int64("company_id", sub.CompanyID),
		logx.Int64("site_id", sub.SiteID),
	)
	return id, nil
}

// Latest returns the authoritative submission per driver with stale job
// references already cleaned out.
func (s *Service) Latest(ctx context.Context, scope domain.Scope) ([]domain.PreferenceSubmission, error) {
	if !scope.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	subs, err := s.repo.ListSubmissions(ctx, scope)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	latest := LatestPerDriver(subs)
	cleaned := CleanLists(latest, jobs)
	for i := range latest {
		latest[i].JobIDs = cleaned[latest[i].DriverID]
	}
	return latest, nil
}

// Pin records an administrator override assigning a job to a driver.
// Both must exist in the scope, the driver must be eligible, and an airport
// job requires an airport-certified driver. Pinning an already-pinned job
// supersedes the previous pin.
func (s *Service) Pin(ctx context.Context, m *domain.ManualAssignment) (int64, error) {
	scope := domain.Scope{CompanyID: m.CompanyID, SiteID: m.SiteID}
	if !scope.Valid() || m.DriverID <= 0 || m.JobID <= 0 {
		return 0, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.checkTenant(ctx, scope); err != nil {
		return 0, err
	}

	d, err := s.drivers.Get(ctx, scope, m.DriverID)
	if err != nil {
		return 0, err
	}
	if d == nil {
		return 0, apperr.ErrNotFound
	}
	j, err := s.jobs.Get(ctx, scope, m.JobID)
	if err != nil {
		return 0, err
	}
	if j == nil {
		return 0, apperr.ErrNotFound
	}
	if !d.Eligible {
		return 0, apperr.ErrInvalid
	}
	if j.Airport && !d.AirportCertified {
		return 0, apperr.ErrInvalid
	}

	id, err := s.repo.PinManual(ctx, m)
	if err != nil {
		return 0, err
	}

	s.logger.Info("manual assignment pinned",
		logx.String("event", "manual_pinned"),
		logx.Int64("driver_id", m.DriverID),
		logx.Int64("job_id", m.JobID),
		logx.Int64("company_id", m.CompanyID),
		logx.Int64("site_id", m.SiteID),
	)
	return id, nil
}

// Unpin removes the administrator override for a job.
func (s *Service) Unpin(ctx context.Context, scope domain.Scope, jobID int64) error {
	if !scope.Valid() || jobID <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.UnpinManual(ctx, scope, jobID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// ListPins returns the site's manual assignment pins.
func (s *Service) ListPins(ctx context.Context, scope domain.Scope) ([]domain.ManualAssignment, error) {
	if !scope.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListManual(ctx, scope)
}

// AutoAssign returns the site's auto-assign toggle.
func (s *Service) AutoAssign(ctx context.Context, scope domain.Scope) (bool, error) {
	if !scope.Valid() {
		return false, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.GetAutoAssign(ctx, scope)
}

// SetAutoAssign switches the automatic fallback passes on or off for a site.
func (s *Service) SetAutoAssign(ctx context.Context, scope domain.Scope, enabled bool) error {
	if !scope.Valid() {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.checkTenant(ctx, scope); err != nil {
		return err
	}
	return s.repo.SetAutoAssign(ctx, scope, enabled)
}
