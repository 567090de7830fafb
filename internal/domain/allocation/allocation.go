package allocation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositivePrincipal = errors.New("allocation principal must be positive")
	ErrNegativeNetCash      = errors.New("allocation net cash would be negative")
	ErrOverAllocation       = errors.New("member allocations exceed the approved group amount")
)

// Policy constants for member-level sub-loans. Fixed by SACCO by-laws,
// not configurable per loan.
var (
	InterestRate    = decimal.New(1, -1) // 10% flat
	InterestPercent = decimal.NewFromInt(10)
	TopupRate       = decimal.New(1, -1) // 10% mandatory savings top-up
	ProcessingFee   = decimal.NewFromInt(10000)
)

const WeeksDue = 10

// Terms is the full money breakdown for one member's sub-loan.
// NetCash is what the member actually receives in hand.
type Terms struct {
	Principal     decimal.Decimal
	Interest      decimal.Decimal
	ProcessingFee decimal.Decimal
	OpeningTopup  decimal.Decimal
	NetCash       decimal.Decimal
}

// Compute derives the sub-loan terms for one member principal.
// Pure: no I/O, no rounding until currency display.
func Compute(principal decimal.Decimal) (Terms, error) {
	if principal.Sign() <= 0 {
		return Terms{}, fmt.Errorf("%w: got %s", ErrNonPositivePrincipal, principal)
	}
	interest := principal.Mul(InterestRate)
	topup := principal.Mul(TopupRate)
	net := principal.Sub(interest).Sub(ProcessingFee).Sub(topup)
	if net.Sign() < 0 {
		return Terms{}, fmt.Errorf("%w: principal %s yields net cash %s", ErrNegativeNetCash, principal, net)
	}
	return Terms{
		Principal:     principal,
		Interest:      interest,
		ProcessingFee: ProcessingFee,
		OpeningTopup:  topup,
		NetCash:       net,
	}, nil
}

// MemberShare pairs a member with the principal they draw from the pool.
type MemberShare struct {
	MemberID string
	Terms    Terms
}

// Plan computes terms for every member share and checks the shares against
// the approved group total. Under-allocation is allowed (the group may hold
// back part of the pool); over-allocation is not.
func Plan(groupTotal decimal.Decimal, requested []MemberRequest) ([]MemberShare, error) {
	shares := make([]MemberShare, 0, len(requested))
	sum := decimal.Zero
	for _, r := range requested {
		terms, err := Compute(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", r.MemberID, err)
		}
		sum = sum.Add(r.Amount)
		shares = append(shares, MemberShare{MemberID: r.MemberID, Terms: terms})
	}
	if sum.GreaterThan(groupTotal) {
		return nil, fmt.Errorf("%w: requested %s, approved %s", ErrOverAllocation, sum, groupTotal)
	}
	return shares, nil
}

// MemberRequest is one line of the wish-list submitted with a group request.
type MemberRequest struct {
	MemberID string
	Amount   decimal.Decimal
}
