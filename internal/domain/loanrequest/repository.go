package loanrequest

import "context"

type Repository interface {
	// Create persists the request together with its allocation lines.
	Create(ctx context.Context, req *GroupLoanRequest, allocs []MemberAllocationRequest) error

	GetByRequestID(ctx context.Context, requestID string) (*GroupLoanRequest, error)
	// GetByRequestIDForUpdate locks the request row for the decision
	// transaction so two approvals cannot both see PENDING.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*GroupLoanRequest, error)

	// ListAllocations returns the member lines in submission order.
	ListAllocations(ctx context.Context, loanRequestID uint64) ([]MemberAllocationRequest, error)

	Save(ctx context.Context, req *GroupLoanRequest) error
	// UpdateAllocationStatuses flips every line of the request at once.
	UpdateAllocationStatuses(ctx context.Context, loanRequestID uint64, status AllocationStatus) error
}
