package roster

import (
	"context"

	"rosterbid/internal/domain"
)

type driverRepository interface {
	Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Driver, error)
	List(ctx context.Context, scope domain.Scope) ([]domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) (int64, error)
	UpdatePartial(ctx context.Context, scope domain.Scope, id int64, upd domain.PartialDriverUpdate) (*domain.Driver, error)
	Delete(ctx context.Context, scope domain.Scope, id int64) (bool, error)
}

type jobRepository interface {
	Get(ctx context.Context, scope domain.Scope, id int64) (*domain.Job, error)
	List(ctx context.Context, scope domain.Scope) ([]domain.Job, error)
	Create(ctx context.Context, j *domain.Job) (int64, error)
	Delete(ctx context.Context, scope domain.Scope, id int64) (bool, error)
}
