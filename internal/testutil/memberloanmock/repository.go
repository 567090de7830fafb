package memberloanmock

import (
	"context"

	domain "sacco-loan-service/internal/domain/memberloan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying memberloan.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, l *domain.MemberLoan) error
	GetByMemberLoanIDFn func(ctx context.Context, memberLoanID string) (*domain.MemberLoan, error)
	ListByGroupLoanIDFn func(ctx context.Context, groupLoanID uint64) ([]domain.MemberLoan, error)
	ListActiveFn        func(ctx context.Context) ([]domain.MemberLoan, error)
	SaveFn              func(ctx context.Context, l *domain.MemberLoan) error
}

func (m *Repo) Create(ctx context.Context, l *domain.MemberLoan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByMemberLoanID(ctx context.Context, memberLoanID string) (*domain.MemberLoan, error) {
	if m.GetByMemberLoanIDFn != nil {
		return m.GetByMemberLoanIDFn(ctx, memberLoanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByGroupLoanID(ctx context.Context, groupLoanID uint64) ([]domain.MemberLoan, error) {
	if m.ListByGroupLoanIDFn != nil {
		return m.ListByGroupLoanIDFn(ctx, groupLoanID)
	}
	return nil, nil
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.MemberLoan, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.MemberLoan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
