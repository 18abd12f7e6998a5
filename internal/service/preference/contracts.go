package preference

import (
	"context"

	"rosterbid/internal/domain"
)

type preferenceRepository interface {
	InsertSubmission(ctx context.Context, s *domain.PreferenceSubmission) (int64, error)
	ListSubmissions(ctx context.Context, scope domain.Scope) ([]domain.PreferenceSubmission, error)
	PinManual(ctx context.Context, m *domain.ManualAssignment) (int64, error)
	UnpinManual(ctx context.Context, scope domain.Scope, jobID int64) (bool, error)
	ListManual(ctx context.Context, scope domain.Scope) ([]domain.ManualAssignment, error)
	GetAutoAssign(ctx context.Context, scope domain.Scope) (bool, error)
	SetAutoAssign(ctx context.Context, scope domain.Scope, enabled bool) error
}

type driverReader interface {
	Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Driver, error)
}

type jobReader interface {
	Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Job, error)
	List(ctx context.Context, scope domain.Scope) ([]domain.Job, error)
}

// tenantChecker verifies a scope against the external tenant registry.
// A nil checker disables the verification.
type tenantChecker interface {
	SiteActive(ctx context.Context, scope domain.Scope) (bool, error)
}
