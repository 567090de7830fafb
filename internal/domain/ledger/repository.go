package ledger

import "context"

type Repository interface {
	AppendProcessingFee(ctx context.Context, e *ProcessingFeeEntry) error
	AppendInterest(ctx context.Context, e *InterestEntry) error
	AppendPenalty(ctx context.Context, e *PenaltyEntry) error

	// CreateRun inserts the period marker; a duplicate period must surface
	// ErrRunAlreadyApplied.
	CreateRun(ctx context.Context, r *PenaltyRun) error
	SaveRun(ctx context.Context, r *PenaltyRun) error

	ListFeesByMemberLoanID(ctx context.Context, memberLoanID uint64) ([]ProcessingFeeEntry, error)
	ListInterestByMemberLoanID(ctx context.Context, memberLoanID uint64) ([]InterestEntry, error)
}
