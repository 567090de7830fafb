package grouploan

import "context"

type Repository interface {
	Create(ctx context.Context, l *GroupLoan) error
	GetByGroupLoanID(ctx context.Context, groupLoanID string) (*GroupLoan, error)
	// GetByGroupLoanIDForUpdate locks the loan row for finalize.
	GetByGroupLoanIDForUpdate(ctx context.Context, groupLoanID string) (*GroupLoan, error)
	// CountActiveByGroupID feeds the loan-cap guard. Only meaningful inside
	// a transaction that also holds the group row lock.
	CountActiveByGroupID(ctx context.Context, groupID string) (int64, error)
	Save(ctx context.Context, l *GroupLoan) error
}
