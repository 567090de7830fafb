package request

import (
	"context"
	"fmt"
	"time"

	"sacco-loan-service/internal/domain/loanrequest"
	"sacco-loan-service/internal/domain/uow"
	"sacco-loan-service/pkg/id"
)

type Usecase struct {
	requests loanrequest.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(requests loanrequest.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{requests: requests, uow: tx}
}

// Create persists a group's aggregate request with its wish-list, PENDING.
// Allocation math and the loan cap are checked at approval time, not here;
// intake only rejects obviously malformed submissions.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequestDTO, error) {
	if in.GroupID == "" {
		return nil, ErrMissingGroupID
	}
	if in.RequestedBy == "" {
		return nil, ErrMissingActorID
	}
	if in.RequestedAmount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(in.Allocations) == 0 {
		return nil, ErrNoAllocationLines
	}
	for _, line := range in.Allocations {
		if line.MemberID == "" {
			return nil, fmt.Errorf("%w: allocation line without member id", ErrNoAllocationLines)
		}
		if line.Amount.Sign() <= 0 {
			return nil, fmt.Errorf("%w: member %s", ErrInvalidAmount, line.MemberID)
		}
	}

	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Group must exist; membership checks are the caller's concern.
		if _, err := r.Groups.GetByGroupID(ctx, in.GroupID); err != nil {
			return err
		}

		req := &loanrequest.GroupLoanRequest{
			RequestID:           id.NewID32(),
			GroupID:             in.GroupID,
			RequestedAmount:     in.RequestedAmount,
			RequestedBy:         in.RequestedBy,
			EligibleMemberCount: len(in.Allocations),
			Status:              loanrequest.StatusPending,
			DateRequested:       time.Now().UTC(),
		}
		allocs := make([]loanrequest.MemberAllocationRequest, 0, len(in.Allocations))
		for _, line := range in.Allocations {
			allocs = append(allocs, loanrequest.MemberAllocationRequest{
				AllocationID:    id.NewID32(),
				MemberID:        line.MemberID,
				AmountRequested: line.Amount,
				Status:          loanrequest.AllocationPending,
			})
		}
		if err := r.Requests.Create(ctx, req, allocs); err != nil {
			return err
		}
		dto = toDTO(req, allocs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*RequestDTO, error) {
	req, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	allocs, err := u.requests.ListAllocations(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return toDTO(req, allocs), nil
}

func toDTO(req *loanrequest.GroupLoanRequest, allocs []loanrequest.MemberAllocationRequest) *RequestDTO {
	out := &RequestDTO{
		RequestID:           req.RequestID,
		GroupID:             req.GroupID,
		RequestedAmount:     req.RequestedAmount,
		RequestedBy:         req.RequestedBy,
		EligibleMemberCount: req.EligibleMemberCount,
		Status:              string(req.Status),
		DateRequested:       req.DateRequested,
	}
	for _, a := range allocs {
		out.Allocations = append(out.Allocations, AllocationDTO{
			AllocationID:    a.AllocationID,
			MemberID:        a.MemberID,
			AmountRequested: a.AmountRequested,
			Status:          string(a.Status),
		})
	}
	return out
}
