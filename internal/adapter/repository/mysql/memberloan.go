package mysql

import (
	"context"

	"gorm.io/gorm"

	loanDomain "sacco-loan-service/internal/domain/memberloan"
)

type MemberLoanRepository struct{ db *gorm.DB }

func NewMemberLoanRepository(db *gorm.DB) *MemberLoanRepository {
	return &MemberLoanRepository{db: db}
}

func (r *MemberLoanRepository) Create(ctx context.Context, l *loanDomain.MemberLoan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *MemberLoanRepository) GetByMemberLoanID(ctx context.Context, memberLoanID string) (*loanDomain.MemberLoan, error) {
	var out loanDomain.MemberLoan
	res := r.db.WithContext(ctx).Where("member_loan_id = ?", memberLoanID).First(&out)
	if res.Error != nil {
		if res.Error == gorm.ErrRecordNotFound {
			return nil, loanDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *MemberLoanRepository) ListByGroupLoanID(ctx context.Context, groupLoanID uint64) ([]loanDomain.MemberLoan, error) {
	var out []loanDomain.MemberLoan
	res := r.db.WithContext(ctx).
		Where("group_loan_id = ?", groupLoanID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *MemberLoanRepository) ListActive(ctx context.Context) ([]loanDomain.MemberLoan, error) {
	var out []loanDomain.MemberLoan
	res := r.db.WithContext(ctx).
		Where("state = ?", loanDomain.StateActive).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *MemberLoanRepository) Save(ctx context.Context, l *loanDomain.MemberLoan) error {
	return r.db.WithContext(ctx).Save(l).Error
}
