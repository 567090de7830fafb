package approval

import (
	"context"
	"time"

	"sacco-loan-service/internal/domain/allocation"
	"sacco-loan-service/internal/domain/group"
	"sacco-loan-service/internal/domain/grouploan"
	"sacco-loan-service/internal/domain/ledger"
	"sacco-loan-service/internal/domain/loanrequest"
	"sacco-loan-service/internal/domain/memberloan"
	"sacco-loan-service/internal/domain/uow"
	"sacco-loan-service/pkg/id"
)

const (
	stepCreateMemberLoan = "create member loan"
	stepAddSavings       = "increment savings balance"
	stepAppendFee        = "append processing fee entry"
	stepAppendInterest   = "append interest entry"
)

type Usecase struct {
	requests loanrequest.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(requests loanrequest.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{requests: requests, uow: tx}
}

// Approve runs the whole approval as one transaction: cap guard, allocation
// math, group loan insert, per-member ledger posting and the status flips.
// Any failure leaves the request PENDING with zero rows written.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*ApprovalDTO, error) {
	if in.RequestID == "" {
		return nil, ErrMissingRequestID
	}
	if in.ApprovedBy == "" {
		return nil, ErrMissingActorID
	}

	// Unlocked read just to learn the group; the transaction re-reads the
	// request under lock before trusting its status. The repository already
	// distinguishes a missing row from a store failure, so the error passes
	// through untranslated.
	head, err := u.requests.GetByRequestID(ctx, in.RequestID)
	if err != nil {
		return nil, err
	}

	var dto *ApprovalDTO
	err = u.uow.WithinGroupTx(ctx, head.GroupID, func(r uow.Repos, g *group.Group) error {
		req, err := r.Requests.GetByRequestIDForUpdate(ctx, in.RequestID)
		if err != nil {
			return err
		}
		if req.Status != loanrequest.StatusPending {
			return loanrequest.ErrAlreadyDecided
		}

		// Group row is locked, so this count cannot race a concurrent
		// approval for the same group.
		active, err := r.GroupLoans.CountActiveByGroupID(ctx, g.GroupID)
		if err != nil {
			return err
		}
		if active >= grouploan.MaxActivePerGroup {
			return grouploan.ErrLoanCapExceeded
		}

		allocs, err := r.Requests.ListAllocations(ctx, req.ID)
		if err != nil {
			return err
		}
		if len(allocs) == 0 {
			return ErrNoAllocations
		}

		wishes := make([]allocation.MemberRequest, 0, len(allocs))
		for _, a := range allocs {
			wishes = append(wishes, allocation.MemberRequest{MemberID: a.MemberID, Amount: a.AmountRequested})
		}
		shares, err := allocation.Plan(req.RequestedAmount, wishes)
		if err != nil {
			return err
		}

		gl := &grouploan.GroupLoan{
			GroupLoanID:        id.NewID32(),
			RequestID:          req.RequestID,
			GroupID:            g.GroupID,
			Principal:          req.RequestedAmount,
			OutstandingBalance: req.RequestedAmount,
			AllocationOrder:    int(active) + 1,
			State:              grouploan.StateActive,
			ApprovedBy:         in.ApprovedBy,
		}
		if err := r.GroupLoans.Create(ctx, gl); err != nil {
			return err
		}

		loanDTOs := make([]MemberLoanDTO, 0, len(shares))
		for _, s := range shares {
			ml, err := postMember(ctx, r, gl.ID, s)
			if err != nil {
				return err
			}
			loanDTOs = append(loanDTOs, MemberLoanDTO{
				MemberLoanID:     ml.MemberLoanID,
				MemberID:         ml.MemberID,
				Principal:        ml.Principal,
				InterestAmount:   ml.InterestAmount,
				ProcessingFee:    ml.ProcessingFee,
				OpeningTopup:     ml.OpeningTopup,
				NetCashDisbursed: ml.NetCashDisbursed,
				WeeksDue:         ml.WeeksDue,
			})
		}

		if err := r.Requests.UpdateAllocationStatuses(ctx, req.ID, loanrequest.AllocationApproved); err != nil {
			return err
		}

		now := time.Now().UTC()
		req.Status = loanrequest.StatusApproved
		req.DecidedBy = in.ApprovedBy
		req.DecidedAt = &now
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}

		dto = &ApprovalDTO{
			RequestID:   req.RequestID,
			GroupLoanID: gl.GroupLoanID,
			GroupID:     g.GroupID,
			Principal:   gl.Principal,
			MemberLoans: loanDTOs,
			ApprovedBy:  in.ApprovedBy,
			ApprovedAt:  now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// postMember is the per-member unit of work: loan row, savings top-up, fee
// entry, interest entry. It runs inside the outer transaction, so a failure
// here unwinds every previous member as well.
func postMember(ctx context.Context, r uow.Repos, groupLoanID uint64, s allocation.MemberShare) (*memberloan.MemberLoan, error) {
	ml := &memberloan.MemberLoan{
		MemberLoanID:     id.NewID32(),
		GroupLoanID:      groupLoanID,
		MemberID:         s.MemberID,
		Principal:        s.Terms.Principal,
		InterestPercent:  allocation.InterestPercent,
		InterestAmount:   s.Terms.Interest,
		ProcessingFee:    s.Terms.ProcessingFee,
		OpeningTopup:     s.Terms.OpeningTopup,
		NetCashDisbursed: s.Terms.NetCash,
		DisbursedAmount:  s.Terms.NetCash,
		WeeksDue:         allocation.WeeksDue,
		RemainingBalance: s.Terms.Principal,
		State:            memberloan.StateActive,
	}
	if err := r.MemberLoans.Create(ctx, ml); err != nil {
		return nil, &LedgerPostingError{MemberID: s.MemberID, Step: stepCreateMemberLoan, Err: err}
	}
	if err := r.Members.AddToSavings(ctx, s.MemberID, s.Terms.OpeningTopup); err != nil {
		return nil, &LedgerPostingError{MemberID: s.MemberID, Step: stepAddSavings, Err: err}
	}
	fee := &ledger.ProcessingFeeEntry{EntryID: id.NewID32(), MemberLoanID: ml.ID, Amount: s.Terms.ProcessingFee}
	if err := r.Ledger.AppendProcessingFee(ctx, fee); err != nil {
		return nil, &LedgerPostingError{MemberID: s.MemberID, Step: stepAppendFee, Err: err}
	}
	interest := &ledger.InterestEntry{EntryID: id.NewID32(), MemberLoanID: ml.ID, Amount: s.Terms.Interest}
	if err := r.Ledger.AppendInterest(ctx, interest); err != nil {
		return nil, &LedgerPostingError{MemberID: s.MemberID, Step: stepAppendInterest, Err: err}
	}
	return ml, nil
}

// Reject is terminal and writes no loan rows.
func (u *Usecase) Reject(ctx context.Context, in RejectInput) (*RejectionDTO, error) {
	if in.RequestID == "" {
		return nil, ErrMissingRequestID
	}
	if in.RejectedBy == "" {
		return nil, ErrMissingActorID
	}

	var dto *RejectionDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Requests.GetByRequestIDForUpdate(ctx, in.RequestID)
		if err != nil {
			return err
		}
		if req.Status != loanrequest.StatusPending {
			return loanrequest.ErrAlreadyDecided
		}
		if err := r.Requests.UpdateAllocationStatuses(ctx, req.ID, loanrequest.AllocationRejected); err != nil {
			return err
		}
		now := time.Now().UTC()
		req.Status = loanrequest.StatusRejected
		req.DecidedBy = in.RejectedBy
		req.DecidedAt = &now
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}
		dto = &RejectionDTO{RequestID: req.RequestID, RejectedBy: in.RejectedBy, RejectedAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
