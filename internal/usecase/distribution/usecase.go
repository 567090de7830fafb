package distribution

import (
	"context"
	"fmt"
	"time"

	"sacco-loan-service/internal/domain/grouploan"
	"sacco-loan-service/internal/domain/memberloan"
	"sacco-loan-service/internal/domain/uow"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Finalize locks in the adjusted per-member cash amounts for an existing
// group loan and marks it finalized. Separate from the approval transaction;
// triggered later, when the facilitator confirms the physical handout.
// All-or-nothing: a bad adjustment leaves every row untouched.
func (u *Usecase) Finalize(ctx context.Context, in FinalizeInput) (*FinalizeDTO, error) {
	if in.GroupLoanID == "" {
		return nil, ErrMissingGroupLoanID
	}
	if in.ProcessorID == "" {
		return nil, ErrMissingActorID
	}
	if len(in.Adjustments) == 0 {
		return nil, ErrNoAdjustments
	}
	for _, a := range in.Adjustments {
		if a.MemberLoanID == "" {
			return nil, fmt.Errorf("%w: adjustment without member loan id", ErrNoAdjustments)
		}
		if a.Amount.Sign() <= 0 {
			return nil, fmt.Errorf("%w: member loan %s got %s", ErrNonPositiveAmount, a.MemberLoanID, a.Amount)
		}
	}

	var dto *FinalizeDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		gl, err := r.GroupLoans.GetByGroupLoanIDForUpdate(ctx, in.GroupLoanID)
		if err != nil {
			return err
		}
		if gl.Finalized {
			return grouploan.ErrAlreadyFinalized
		}
		if gl.State != grouploan.StateActive {
			return ErrLoanNotActive
		}

		loans, err := r.MemberLoans.ListByGroupLoanID(ctx, gl.ID)
		if err != nil {
			return err
		}
		owned := make(map[string]*memberloan.MemberLoan, len(loans))
		for i := range loans {
			owned[loans[i].MemberLoanID] = &loans[i]
		}

		for _, adj := range in.Adjustments {
			ml, ok := owned[adj.MemberLoanID]
			if !ok {
				return fmt.Errorf("%w: %s", ErrForeignMemberLoan, adj.MemberLoanID)
			}
			ml.DisbursedAmount = adj.Amount
			if err := r.MemberLoans.Save(ctx, ml); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		gl.Finalized = true
		gl.FinalizedBy = in.ProcessorID
		gl.FinalizedAt = &now
		if err := r.GroupLoans.Save(ctx, gl); err != nil {
			return err
		}

		dto = &FinalizeDTO{
			GroupLoanID: gl.GroupLoanID,
			Adjusted:    len(in.Adjustments),
			FinalizedBy: in.ProcessorID,
			FinalizedAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
