package memberloan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("member loan not found")

type State string

const (
	StateActive State = "ACTIVE"
	StateClosed State = "CLOSED"
)

// MemberLoan is one member's share of a group loan.
//
// NetCashDisbursed is always principal − interest − fee − topup, set once at
// construction and never edited independently. DisbursedAmount starts equal
// to NetCashDisbursed and may be adjusted once, by finalize, to the cash
// actually handed out.
type MemberLoan struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"-"`
	MemberLoanID     string          `gorm:"size:32;uniqueIndex:ux_member_loans_loan_id" json:"member_loan_id"`
	GroupLoanID      uint64          `gorm:"not null;index:idx_member_loans_group_loan" json:"-"`
	MemberID         string          `gorm:"size:32;index:idx_member_loans_member" json:"member_id"`
	Principal        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"principal"`
	InterestPercent  decimal.Decimal `gorm:"type:decimal(6,4);not null" json:"interest_percent"`
	InterestAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"interest_amount"`
	ProcessingFee    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"processing_fee"`
	OpeningTopup     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"opening_topup"`
	NetCashDisbursed decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"net_cash_disbursed"`
	DisbursedAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"disbursed_amount"`
	WeeksDue         int             `gorm:"not null" json:"weeks_due"`
	RemainingBalance decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"remaining_balance"`
	State            State           `gorm:"size:16;default:'ACTIVE';index" json:"state"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (MemberLoan) TableName() string { return "member_loans" }
