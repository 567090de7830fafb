package mysql

import (
	"context"

	"gorm.io/gorm"

	groupDomain "sacco-loan-service/internal/domain/group"
	"sacco-loan-service/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func bindRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Groups:      &GroupRepository{db: tx},
		Members:     &MemberRepository{db: tx},
		Requests:    &LoanRequestRepository{db: tx},
		GroupLoans:  &GroupLoanRepository{db: tx},
		MemberLoans: &MemberLoanRepository{db: tx},
		Ledger:      &LedgerRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindRepos(tx))
	})
}

func (u *GormUoW) WithinGroupTx(ctx context.Context, groupID string, fn func(r uow.Repos, g *groupDomain.Group) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := bindRepos(tx)
		// Lock the group row up front; concurrent approvals for the same
		// group queue behind this lock, so the active-loan count they read
		// is never stale.
		g, err := r.Groups.GetByGroupIDForUpdate(ctx, groupID)
		if err != nil {
			return err
		}
		return fn(r, g)
	})
}
