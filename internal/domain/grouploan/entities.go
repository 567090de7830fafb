package grouploan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("group loan not found")
	ErrLoanCapExceeded  = errors.New("group already holds the maximum number of active loans")
	ErrAlreadyFinalized = errors.New("group loan distribution already finalized")
)

// MaxActivePerGroup caps concurrent ACTIVE group loans per group.
const MaxActivePerGroup = 2

type State string

const (
	StateActive State = "ACTIVE"
	StateClosed State = "CLOSED"
)

// GroupLoan is the pooled loan created exactly once per approved request.
// At most MaxActivePerGroup rows may be ACTIVE for the same group.
type GroupLoan struct {
	ID                 uint64          `gorm:"primaryKey;column:id" json:"-"`
	GroupLoanID        string          `gorm:"size:32;uniqueIndex:ux_group_loans_loan_id" json:"group_loan_id"`
	RequestID          string          `gorm:"size:32;uniqueIndex:ux_group_loans_request_id" json:"request_id"`
	GroupID            string          `gorm:"size:32;index:idx_group_loans_group_state" json:"group_id"`
	Principal          decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"principal"`
	OutstandingBalance decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"outstanding_balance"`
	AllocationOrder    int             `gorm:"not null" json:"allocation_order"`
	State              State           `gorm:"size:16;default:'ACTIVE';index:idx_group_loans_group_state" json:"state"`
	ApprovedBy         string          `gorm:"size:32" json:"approved_by"`
	Finalized          bool            `gorm:"not null;default:false" json:"finalized"`
	FinalizedBy        string          `gorm:"size:32" json:"finalized_by,omitempty"`
	FinalizedAt        *time.Time      `json:"finalized_at,omitempty"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (GroupLoan) TableName() string { return "group_loans" }
