package loanrequest

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("loan request not found")
	ErrAlreadyDecided = errors.New("loan request already approved or rejected")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// GroupLoanRequest is a group's aggregate ask. Terminal once APPROVED or
// REJECTED; the decision never reopens.
type GroupLoanRequest struct {
	ID                  uint64          `gorm:"primaryKey;column:id" json:"-"`
	RequestID           string          `gorm:"size:32;uniqueIndex:ux_loan_requests_request_id" json:"request_id"`
	GroupID             string          `gorm:"size:32;index:idx_loan_requests_group" json:"group_id"`
	RequestedAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"requested_amount"`
	RequestedBy         string          `gorm:"size:32" json:"requested_by"`
	EligibleMemberCount int             `gorm:"not null;default:0" json:"eligible_member_count"`
	Status              Status          `gorm:"size:16;default:'PENDING';index" json:"status"`
	DecidedBy           string          `gorm:"size:32" json:"decided_by,omitempty"`
	DateRequested       time.Time       `gorm:"not null" json:"date_requested"`
	DecidedAt           *time.Time      `json:"decided_at,omitempty"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (GroupLoanRequest) TableName() string { return "group_loan_requests" }

type AllocationStatus string

const (
	AllocationPending  AllocationStatus = "pending"
	AllocationApproved AllocationStatus = "approved"
	AllocationRejected AllocationStatus = "rejected"
)

// MemberAllocationRequest is one member's line on the group wish-list.
// Status moves in lockstep with the parent request's decision.
type MemberAllocationRequest struct {
	ID              uint64           `gorm:"primaryKey;column:id" json:"-"`
	AllocationID    string           `gorm:"size:32;uniqueIndex:ux_member_allocations_allocation_id" json:"allocation_id"`
	LoanRequestID   uint64           `gorm:"not null;index:idx_member_allocations_request" json:"-"`
	MemberID        string           `gorm:"size:32;index" json:"member_id"`
	AmountRequested decimal.Decimal  `gorm:"type:decimal(18,2);not null" json:"amount_requested"`
	Status          AllocationStatus `gorm:"size:16;default:'pending'" json:"status"`
	CreatedAt       time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MemberAllocationRequest) TableName() string { return "member_allocation_requests" }
