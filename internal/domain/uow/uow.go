package uow

import (
	"context"

	"sacco-loan-service/internal/domain/group"
	"sacco-loan-service/internal/domain/grouploan"
	"sacco-loan-service/internal/domain/ledger"
	"sacco-loan-service/internal/domain/loanrequest"
	"sacco-loan-service/internal/domain/member"
	"sacco-loan-service/internal/domain/memberloan"
)

// Repos bundles every repository bound to the same transaction.
type Repos struct {
	Groups      group.Repository
	Members     member.Repository
	Requests    loanrequest.Repository
	GroupLoans  grouploan.Repository
	MemberLoans memberloan.Repository
	Ledger      ledger.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one database transaction; any error rolls
	// the whole write set back.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinGroupTx locks the group row first, then runs fn. Approvals for
	// the same group serialize here, which keeps the active-loan-cap check
	// and the subsequent insert atomic.
	WithinGroupTx(ctx context.Context, groupID string, fn func(r Repos, g *group.Group) error) error
}
