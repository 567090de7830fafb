package ledgermock

import (
	"context"

	domain "sacco-loan-service/internal/domain/ledger"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying ledger.Repository.
type Repo struct {
	AppendProcessingFeeFn        func(ctx context.Context, e *domain.ProcessingFeeEntry) error
	AppendInterestFn             func(ctx context.Context, e *domain.InterestEntry) error
	AppendPenaltyFn              func(ctx context.Context, e *domain.PenaltyEntry) error
	CreateRunFn                  func(ctx context.Context, r *domain.PenaltyRun) error
	SaveRunFn                    func(ctx context.Context, r *domain.PenaltyRun) error
	ListFeesByMemberLoanIDFn     func(ctx context.Context, memberLoanID uint64) ([]domain.ProcessingFeeEntry, error)
	ListInterestByMemberLoanIDFn func(ctx context.Context, memberLoanID uint64) ([]domain.InterestEntry, error)
}

func (m *Repo) AppendProcessingFee(ctx context.Context, e *domain.ProcessingFeeEntry) error {
	if m.AppendProcessingFeeFn != nil {
		return m.AppendProcessingFeeFn(ctx, e)
	}
	return nil
}

func (m *Repo) AppendInterest(ctx context.Context, e *domain.InterestEntry) error {
	if m.AppendInterestFn != nil {
		return m.AppendInterestFn(ctx, e)
	}
	return nil
}

func (m *Repo) AppendPenalty(ctx context.Context, e *domain.PenaltyEntry) error {
	if m.AppendPenaltyFn != nil {
		return m.AppendPenaltyFn(ctx, e)
	}
	return nil
}

func (m *Repo) CreateRun(ctx context.Context, r *domain.PenaltyRun) error {
	if m.CreateRunFn != nil {
		return m.CreateRunFn(ctx, r)
	}
	return nil
}

func (m *Repo) SaveRun(ctx context.Context, r *domain.PenaltyRun) error {
	if m.SaveRunFn != nil {
		return m.SaveRunFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListFeesByMemberLoanID(ctx context.Context, memberLoanID uint64) ([]domain.ProcessingFeeEntry, error) {
	if m.ListFeesByMemberLoanIDFn != nil {
		return m.ListFeesByMemberLoanIDFn(ctx, memberLoanID)
	}
	return nil, nil
}

func (m *Repo) ListInterestByMemberLoanID(ctx context.Context, memberLoanID uint64) ([]domain.InterestEntry, error) {
	if m.ListInterestByMemberLoanIDFn != nil {
		return m.ListInterestByMemberLoanIDFn(ctx, memberLoanID)
	}
	return nil, nil
}
