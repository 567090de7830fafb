package penalty

import (
	"github.com/shopspring/decimal"
)

// MissedPaymentFine is the fixed weekly fine per active member loan that
// still carries a balance.
var MissedPaymentFine = decimal.NewFromInt(1000)

type SweepDTO struct {
	PeriodKey  string          `json:"period_key"`
	LoansFined int             `json:"loans_fined"`
	TotalFines decimal.Decimal `json:"total_fines"`
}
