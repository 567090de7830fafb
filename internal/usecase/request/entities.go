package request

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingGroupID    = errors.New("missing group id")
	ErrMissingActorID    = errors.New("missing requesting user id")
	ErrInvalidAmount     = errors.New("requested amount must be positive")
	ErrNoAllocationLines = errors.New("at least one member allocation line is required")
)

type AllocationLine struct {
	MemberID string          `json:"member_id"`
	Amount   decimal.Decimal `json:"amount"`
}

type CreateInput struct {
	GroupID         string
	RequestedAmount decimal.Decimal
	RequestedBy     string
	Allocations     []AllocationLine
}

type AllocationDTO struct {
	AllocationID    string          `json:"allocation_id"`
	MemberID        string          `json:"member_id"`
	AmountRequested decimal.Decimal `json:"amount_requested"`
	Status          string          `json:"status"`
}

type RequestDTO struct {
	RequestID           string          `json:"request_id"`
	GroupID             string          `json:"group_id"`
	RequestedAmount     decimal.Decimal `json:"requested_amount"`
	RequestedBy         string          `json:"requested_by"`
	EligibleMemberCount int             `json:"eligible_member_count"`
	Status              string          `json:"status"`
	DateRequested       time.Time       `json:"date_requested"`
	Allocations         []AllocationDTO `json:"allocations,omitempty"`
}
