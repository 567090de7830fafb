package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	ledgerDomain "sacco-loan-service/internal/domain/ledger"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) AppendProcessingFee(ctx context.Context, e *ledgerDomain.ProcessingFeeEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *LedgerRepository) AppendInterest(ctx context.Context, e *ledgerDomain.InterestEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *LedgerRepository) AppendPenalty(ctx context.Context, e *ledgerDomain.PenaltyEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// CreateRun relies on the unique period index: the database, not the
// application, decides whether this period was already swept.
func (r *LedgerRepository) CreateRun(ctx context.Context, run *ledgerDomain.PenaltyRun) error {
	err := r.db.WithContext(ctx).Create(run).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ledgerDomain.ErrRunAlreadyApplied
	}
	return err
}

func (r *LedgerRepository) SaveRun(ctx context.Context, run *ledgerDomain.PenaltyRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

func (r *LedgerRepository) ListFeesByMemberLoanID(ctx context.Context, memberLoanID uint64) ([]ledgerDomain.ProcessingFeeEntry, error) {
	var out []ledgerDomain.ProcessingFeeEntry
	res := r.db.WithContext(ctx).Where("member_loan_id = ?", memberLoanID).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *LedgerRepository) ListInterestByMemberLoanID(ctx context.Context, memberLoanID uint64) ([]ledgerDomain.InterestEntry, error) {
	var out []ledgerDomain.InterestEntry
	res := r.db.WithContext(ctx).Where("member_loan_id = ?", memberLoanID).Order("id ASC").Find(&out)
	return out, res.Error
}
