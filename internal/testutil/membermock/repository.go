package membermock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "sacco-loan-service/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying member.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, m *domain.Member) error
	GetByMemberIDFn func(ctx context.Context, memberID string) (*domain.Member, error)
	AddToSavingsFn  func(ctx context.Context, memberID string, amount decimal.Decimal) error
}

func (m *Repo) Create(ctx context.Context, mem *domain.Member) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mem)
	}
	return nil
}

func (m *Repo) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.GetByMemberIDFn != nil {
		return m.GetByMemberIDFn(ctx, memberID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) AddToSavings(ctx context.Context, memberID string, amount decimal.Decimal) error {
	if m.AddToSavingsFn != nil {
		return m.AddToSavingsFn(ctx, memberID, amount)
	}
	return nil
}
