package handlers

import (
	"context"

	"rosterbid/internal/domain"
	"rosterbid/internal/service/preference"
	"rosterbid/internal/service/resolver"
	"rosterbid/internal/service/roster"
)

type driverUsecase interface {
	Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Driver, error)
	List(ctx context.Context, scope domain.Scope) ([]domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) (int64, error)
	Update(ctx context.Context, scope domain.Scope, upd domain.PartialDriverUpdate) (*domain.Driver, error)
	Delete(ctx context.Context, scope domain.Scope, id int64) error
}

// NewDriverUsecase wires a DriverService into a driverUsecase.
func NewDriverUsecase(svc *roster.DriverService) driverUsecase {
	return svc
}

type jobUsecase interface {
	Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Job, error)
	List(ctx context.Context, scope domain.Scope) ([]domain.Job, error)
	Create(ctx context.Context, j *domain.Job) (int64, error)
	Delete(ctx context.Context, scope domain.Scope, id int64) error
}

// NewJobUsecase wires a JobService into a jobUsecase.
func NewJobUsecase(svc *roster.JobService) jobUsecase {
	return svc
}

type preferenceUsecase interface {
	Submit(ctx context.Context, sub *domain.PreferenceSubmission) (int64, error)
	Latest(ctx context.Context, scope domain.Scope) ([]domain.PreferenceSubmission, error)
	Pin(ctx context.Context, m *domain.ManualAssignment) (int64, error)
	Unpin(ctx context.Context, scope domain.Scope, jobID int64) error
	ListPins(ctx context.Context, scope domain.Scope) ([]domain.ManualAssignment, error)
	AutoAssign(ctx context.Context, scope domain.Scope) (bool, error)
	SetAutoAssign(ctx context.Context, scope domain.Scope, enabled bool) error
}

// NewPreferenceUsecase wires a preference Service into a preferenceUsecase.
func NewPreferenceUsecase(svc *preference.Service) preferenceUsecase {
	return svc
}

type resolverUsecase interface {
	ResolveSite(ctx context.Context, scope domain.Scope) (resolver.Resolution, error)
}

// NewResolverUsecase wires a resolver Service into a resolverUsecase.
func NewResolverUsecase(svc *resolver.Service) resolverUsecase {
	return svc
}
