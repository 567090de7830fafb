package penalty

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"sacco-loan-service/internal/domain/ledger"
	"sacco-loan-service/internal/domain/uow"
	"sacco-loan-service/pkg/id"
)

type Usecase struct {
	uow uow.UnitOfWork
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork) *Usecase {
	return &Usecase{uow: tx, now: time.Now}
}

// WithClock overrides the sweep clock; tests pin the period with it.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// PeriodKey buckets sweeps by ISO week, e.g. "2026-W35".
func PeriodKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ApplyWeekly fines every active member loan that still carries a balance.
// The unique penalty-run row is inserted first, inside the same transaction,
// so a second invocation within the same ISO week rolls back before posting
// a single fine.
func (u *Usecase) ApplyWeekly(ctx context.Context) (*SweepDTO, error) {
	period := PeriodKey(u.now())

	var dto *SweepDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		run := &ledger.PenaltyRun{PeriodKey: period, TotalAmount: decimal.Zero}
		if err := r.Ledger.CreateRun(ctx, run); err != nil {
			return err
		}

		loans, err := r.MemberLoans.ListActive(ctx)
		if err != nil {
			return err
		}

		fined := 0
		total := decimal.Zero
		for i := range loans {
			ml := &loans[i]
			if ml.RemainingBalance.Sign() <= 0 {
				continue
			}
			entry := &ledger.PenaltyEntry{
				EntryID:      id.NewID32(),
				MemberLoanID: ml.ID,
				PeriodKey:    period,
				Amount:       MissedPaymentFine,
			}
			if err := r.Ledger.AppendPenalty(ctx, entry); err != nil {
				return err
			}
			ml.RemainingBalance = ml.RemainingBalance.Add(MissedPaymentFine)
			if err := r.MemberLoans.Save(ctx, ml); err != nil {
				return err
			}
			fined++
			total = total.Add(MissedPaymentFine)
		}

		run.LoansFined = fined
		run.TotalAmount = total
		if err := r.Ledger.SaveRun(ctx, run); err != nil {
			return err
		}

		dto = &SweepDTO{PeriodKey: period, LoansFined: fined, TotalFines: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
