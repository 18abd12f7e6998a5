package resolver

import (
	"context"

	"rosterbid/internal/domain"
)

type snapshotSource interface {
	Load(ctx context.Context, scope domain.Scope) (*domain.Snapshot, error)
}

type counter interface {
	Inc()
}
