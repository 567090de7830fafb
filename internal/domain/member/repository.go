package member

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	// AddToSavings increments the member's savings balance in place.
	// Must run inside the caller's transaction.
	AddToSavings(ctx context.Context, memberID string, amount decimal.Decimal) error
}
