package memberloan

import "context"

type Repository interface {
	Create(ctx context.Context, l *MemberLoan) error
	GetByMemberLoanID(ctx context.Context, memberLoanID string) (*MemberLoan, error)
	// ListByGroupLoanID returns the group's member loans in creation order.
	ListByGroupLoanID(ctx context.Context, groupLoanID uint64) ([]MemberLoan, error)
	// ListActive returns every ACTIVE member loan; used by the penalty sweep.
	ListActive(ctx context.Context) ([]MemberLoan, error)
	Save(ctx context.Context, l *MemberLoan) error
}
