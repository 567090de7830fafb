package group

import "context"

type Repository interface {
	Create(ctx context.Context, g *Group) error
	GetByGroupID(ctx context.Context, groupID string) (*Group, error)
	// GetByGroupIDForUpdate locks the group row for the enclosing
	// transaction; approvals for the same group serialize on it.
	GetByGroupIDForUpdate(ctx context.Context, groupID string) (*Group, error)
}
