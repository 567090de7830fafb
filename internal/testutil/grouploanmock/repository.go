package grouploanmock

import (
	"context"

	domain "sacco-loan-service/internal/domain/grouploan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying grouploan.Repository.
type Repo struct {
	CreateFn                    func(ctx context.Context, l *domain.GroupLoan) error
	GetByGroupLoanIDFn          func(ctx context.Context, groupLoanID string) (*domain.GroupLoan, error)
	GetByGroupLoanIDForUpdateFn func(ctx context.Context, groupLoanID string) (*domain.GroupLoan, error)
	CountActiveByGroupIDFn      func(ctx context.Context, groupID string) (int64, error)
	SaveFn                      func(ctx context.Context, l *domain.GroupLoan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.GroupLoan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByGroupLoanID(ctx context.Context, groupLoanID string) (*domain.GroupLoan, error) {
	if m.GetByGroupLoanIDFn != nil {
		return m.GetByGroupLoanIDFn(ctx, groupLoanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByGroupLoanIDForUpdate(ctx context.Context, groupLoanID string) (*domain.GroupLoan, error) {
	if m.GetByGroupLoanIDForUpdateFn != nil {
		return m.GetByGroupLoanIDForUpdateFn(ctx, groupLoanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) CountActiveByGroupID(ctx context.Context, groupID string) (int64, error) {
	if m.CountActiveByGroupIDFn != nil {
		return m.CountActiveByGroupIDFn(ctx, groupID)
	}
	return 0, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.GroupLoan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
