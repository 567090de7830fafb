package uowmock

import (
	"context"
	"errors"

	"sacco-loan-service/internal/domain/group"
	"sacco-loan-service/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock satisfying uow.UnitOfWork. Fill in the
// function fields a test needs; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinGroupTxFn func(ctx context.Context, groupID string, fn func(r uow.Repos, g *group.Group) error) error
}

func New() *UoW { return &UoW{} }

// PassThrough wires both transaction styles straight through to the given
// repos with no transactional behavior, which is what most usecase tests want.
func PassThrough(r uow.Repos, g *group.Group) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinGroupTxFn: func(ctx context.Context, groupID string, fn func(uow.Repos, *group.Group) error) error {
			if g == nil {
				return group.ErrNotFound
			}
			return fn(r, g)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinGroupTx(ctx context.Context, groupID string, fn func(r uow.Repos, g *group.Group) error) error {
	if m.WithinGroupTxFn != nil {
		return m.WithinGroupTxFn(ctx, groupID, fn)
	}
	return errUnimplemented
}
