package groupmock

import (
	"context"

	domain "sacco-loan-service/internal/domain/group"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying group.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, g *domain.Group) error
	GetByGroupIDFn          func(ctx context.Context, groupID string) (*domain.Group, error)
	GetByGroupIDForUpdateFn func(ctx context.Context, groupID string) (*domain.Group, error)
}

func (m *Repo) Create(ctx context.Context, g *domain.Group) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, g)
	}
	return nil
}

func (m *Repo) GetByGroupID(ctx context.Context, groupID string) (*domain.Group, error) {
	if m.GetByGroupIDFn != nil {
		return m.GetByGroupIDFn(ctx, groupID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByGroupIDForUpdate(ctx context.Context, groupID string) (*domain.Group, error) {
	if m.GetByGroupIDForUpdateFn != nil {
		return m.GetByGroupIDForUpdateFn(ctx, groupID)
	}
	return nil, domain.ErrNotFound
}
