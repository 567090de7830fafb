package distribution

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingGroupLoanID = errors.New("missing group loan id")
	ErrMissingActorID     = errors.New("missing processor id")
	ErrNoAdjustments      = errors.New("at least one allocation adjustment is required")
	ErrNonPositiveAmount  = errors.New("allocated amount must be positive")
	ErrForeignMemberLoan  = errors.New("member loan does not belong to this group loan")
	ErrLoanNotActive      = errors.New("group loan is not active")
)

// Adjustment is the cash amount actually handed out for one member loan,
// which may differ from the originally computed net cash.
type Adjustment struct {
	MemberLoanID string          `json:"member_loan_id"`
	Amount       decimal.Decimal `json:"amount"`
}

type FinalizeInput struct {
	GroupLoanID string
	ProcessorID string
	Adjustments []Adjustment
}

type FinalizeDTO struct {
	GroupLoanID string    `json:"group_loan_id"`
	Adjusted    int       `json:"adjusted"`
	FinalizedBy string    `json:"finalized_by"`
	FinalizedAt time.Time `json:"finalized_at"`
}
