package member

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("member not found")

// Member carries the running savings balance the disbursement flow tops up.
// The loan core only ever adds to SavingsBalance; each top-up is computed
// from its own loan principal, never from the prior balance.
type Member struct {
	ID             uint64          `gorm:"primaryKey;column:id" json:"-"`
	MemberID       string          `gorm:"size:32;uniqueIndex:ux_members_member_id" json:"member_id"`
	GroupID        string          `gorm:"size:32;index:idx_members_group" json:"group_id"`
	FullName       string          `gorm:"size:128" json:"full_name"`
	SavingsBalance decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"savings_balance"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }
