package roster

import (
	"context"
	"time"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
	"rosterbid/internal/logx"
)

// DriverService is the write boundary of the driver roster.
type DriverService struct {
	repo             driverRepository
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewDriverService creates a DriverService.
func NewDriverService(repo driverRepository, logger logx.Logger, timeout time.Duration) *DriverService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &DriverService{repo: repo, logger: logger, operationTimeout: timeout}
}

// Get returns one driver or apperr.ErrNotFound.
func (s *DriverService) Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Driver, error) {
	if !scope.Valid() || id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	d, err := s.repo.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// List returns the site's drivers in seniority order.
func (s *DriverService) List(ctx context.Context, scope domain.Scope) ([]domain.Driver, error) {
	if !scope.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()
	return s.repo.List(ctx, scope)
}

// Create validates and stores a new driver. Employee IDs are unique per
// scope; a collision surfaces as apperr.ErrConflict.
func (s *DriverService) Create(ctx context.Context, d *domain.Driver) (int64, error) {
	scope := domain.Scope{CompanyID: d.CompanyID, SiteID: d.SiteID}
	if !scope.Valid() {
		return 0, apperr.ErrInvalid
	}
	if !domain.ValidateEmployeeID(d.EmployeeID) || d.Name == "" || d.SeniorityNumber < 0 {
		return 0, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return 0, err
	}

	s.logger.Info("driver created",
		logx.String("event", "driver_created"),
		logx.Int64("driver_id", id),
		logx.String("employee_id", d.EmployeeID),
		logx.Int64("company_id", d.CompanyID),
		logx.Int64("site_id", d.SiteID),
	)
	return id, nil
}

// Update applies a partial update and returns the updated driver.
func (s *DriverService) Update(ctx context.Context, scope domain.Scope, upd domain.PartialDriverUpdate) (*domain.Driver, error) {
	if !scope.Valid() || upd.ID <= 0 {
		return nil, apperr.ErrInvalid
	}
	if upd.Name != nil && *upd.Name == "" {
		return nil, apperr.ErrInvalid
	}
	if upd.SeniorityNumber != nil && *upd.SeniorityNumber < 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	d, err := s.repo.UpdatePartial(ctx, scope, upd.ID, upd)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}

	s.logger.Info("driver updated",
		logx.String("event", "driver_updated"),
		logx.Int64("driver_id", d.ID),
		logx.Int64("company_id", scope.CompanyID),
		logx.Int64("site_id", scope.SiteID),
	)
	return d, nil
}

// Delete removes a driver. Submissions and pins referencing the driver stay
// in place; resolution skips them once the driver is gone.
func (s *DriverService) Delete(ctx context.Context, scope domain.Scope, id int64) error {
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

	s.logger.Info("driver deleted",
		logx.String("event", "driver_deleted"),
		logx.Int64("driver_id", id),
		logx.Int64("company_id", scope.CompanyID),
		logx.Int64("site_id", scope.SiteID),
	)
	return nil
}
