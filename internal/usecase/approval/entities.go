package approval

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingRequestID = errors.New("missing request id")
	ErrMissingActorID   = errors.New("missing acting user id")
	ErrNoAllocations    = errors.New("request has no member allocation lines")
)

// LedgerPostingError pinpoints which member and which write step broke the
// approval. The whole transaction rolls back, so the request stays PENDING
// and the approval is safe to retry.
type LedgerPostingError struct {
	MemberID string
	Step     string
	Err      error
}

func (e *LedgerPostingError) Error() string {
	return fmt.Sprintf("ledger posting failed for member %s at %q: %v", e.MemberID, e.Step, e.Err)
}

func (e *LedgerPostingError) Unwrap() error { return e.Err }

type ApproveInput struct {
	RequestID  string
	ApprovedBy string // audit only, identity resolved by the caller
}

type RejectInput struct {
	RequestID  string
	RejectedBy string
}

type MemberLoanDTO struct {
	MemberLoanID     string          `json:"member_loan_id"`
	MemberID         string          `json:"member_id"`
	Principal        decimal.Decimal `json:"principal"`
	InterestAmount   decimal.Decimal `json:"interest_amount"`
	ProcessingFee    decimal.Decimal `json:"processing_fee"`
	OpeningTopup     decimal.Decimal `json:"opening_topup"`
	NetCashDisbursed decimal.Decimal `json:"net_cash_disbursed"`
	WeeksDue         int             `json:"weeks_due"`
}

type ApprovalDTO struct {
	RequestID   string          `json:"request_id"`
	GroupLoanID string          `json:"group_loan_id"`
	GroupID     string          `json:"group_id"`
	Principal   decimal.Decimal `json:"principal"`
	MemberLoans []MemberLoanDTO `json:"member_loans"`
	ApprovedBy  string          `json:"approved_by"`
	ApprovedAt  time.Time       `json:"approved_at"`
}

type RejectionDTO struct {
	RequestID  string    `json:"request_id"`
	RejectedBy string    `json:"rejected_by"`
	RejectedAt time.Time `json:"rejected_at"`
}
