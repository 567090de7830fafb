package mysql

import (
	"context"

	"gorm.io/gorm"

	loanDomain "sacco-loan-service/internal/domain/grouploan"
)

type GroupLoanRepository struct{ db *gorm.DB }

func NewGroupLoanRepository(db *gorm.DB) *GroupLoanRepository { return &GroupLoanRepository{db: db} }

func (r *GroupLoanRepository) Create(ctx context.Context, l *loanDomain.GroupLoan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *GroupLoanRepository) GetByGroupLoanID(ctx context.Context, groupLoanID string) (*loanDomain.GroupLoan, error) {
	var out loanDomain.GroupLoan
	res := r.db.WithContext(ctx).Where("group_loan_id = ?", groupLoanID).First(&out)
	if res.Error != nil {
		if res.Error == gorm.ErrRecordNotFound {
			return nil, loanDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *GroupLoanRepository) GetByGroupLoanIDForUpdate(ctx context.Context, groupLoanID string) (*loanDomain.GroupLoan, error) {
	var out loanDomain.GroupLoan
	res := forUpdate(r.db.WithContext(ctx)).
		Where("group_loan_id = ?", groupLoanID).
		First(&out)
	if res.Error != nil {
		if res.Error == gorm.ErrRecordNotFound {
			return nil, loanDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *GroupLoanRepository) CountActiveByGroupID(ctx context.Context, groupID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.GroupLoan{}).
		Where("group_id = ? AND state = ?", groupID, loanDomain.StateActive).
		Count(&n)
	return n, res.Error
}

func (r *GroupLoanRepository) Save(ctx context.Context, l *loanDomain.GroupLoan) error {
	return r.db.WithContext(ctx).Save(l).Error
}
