package requestmock

import (
	"context"

	domain "sacco-loan-service/internal/domain/loanrequest"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying loanrequest.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, req *domain.GroupLoanRequest, allocs []domain.MemberAllocationRequest) error
	GetByRequestIDFn           func(ctx context.Context, requestID string) (*domain.GroupLoanRequest, error)
	GetByRequestIDForUpdateFn  func(ctx context.Context, requestID string) (*domain.GroupLoanRequest, error)
	ListAllocationsFn          func(ctx context.Context, loanRequestID uint64) ([]domain.MemberAllocationRequest, error)
	SaveFn                     func(ctx context.Context, req *domain.GroupLoanRequest) error
	UpdateAllocationStatusesFn func(ctx context.Context, loanRequestID uint64, status domain.AllocationStatus) error
}

func (m *Repo) Create(ctx context.Context, req *domain.GroupLoanRequest, allocs []domain.MemberAllocationRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, req, allocs)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.GroupLoanRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.GroupLoanRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListAllocations(ctx context.Context, loanRequestID uint64) ([]domain.MemberAllocationRequest, error) {
	if m.ListAllocationsFn != nil {
		return m.ListAllocationsFn(ctx, loanRequestID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, req *domain.GroupLoanRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, req)
	}
	return nil
}

func (m *Repo) UpdateAllocationStatuses(ctx context.Context, loanRequestID uint64, status domain.AllocationStatus) error {
	if m.UpdateAllocationStatusesFn != nil {
		return m.UpdateAllocationStatusesFn(ctx, loanRequestID, status)
	}
	return nil
}
