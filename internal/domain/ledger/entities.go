package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrRunAlreadyApplied = errors.New("penalty run already applied for this period")

// ProcessingFeeEntry is an append-only audit line for the fee charged on one
// member loan. Never mutated once created.
type ProcessingFeeEntry struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	EntryID      string          `gorm:"size:32;uniqueIndex:ux_fee_entries_entry_id" json:"entry_id"`
	MemberLoanID uint64          `gorm:"not null;index:idx_fee_entries_member_loan" json:"-"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (ProcessingFeeEntry) TableName() string { return "processing_fee_ledger" }

// InterestEntry mirrors ProcessingFeeEntry for the interest charged up front.
type InterestEntry struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	EntryID      string          `gorm:"size:32;uniqueIndex:ux_interest_entries_entry_id" json:"entry_id"`
	MemberLoanID uint64          `gorm:"not null;index:idx_interest_entries_member_loan" json:"-"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (InterestEntry) TableName() string { return "interest_ledger" }

// PenaltyEntry records one fine applied by a penalty sweep.
type PenaltyEntry struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	EntryID      string          `gorm:"size:32;uniqueIndex:ux_penalty_entries_entry_id" json:"entry_id"`
	MemberLoanID uint64          `gorm:"not null;index:idx_penalty_entries_member_loan" json:"-"`
	PeriodKey    string          `gorm:"size:16;index" json:"period_key"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (PenaltyEntry) TableName() string { return "penalty_ledger" }

// PenaltyRun makes the weekly sweep idempotent: the unique period key means a
// second run in the same ISO week fails its insert before any fine is posted.
type PenaltyRun struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	PeriodKey   string          `gorm:"size:16;uniqueIndex:ux_penalty_runs_period" json:"period_key"`
	LoansFined  int             `gorm:"not null" json:"loans_fined"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_amount"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (PenaltyRun) TableName() string { return "penalty_runs" }
