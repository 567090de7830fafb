package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	memberDomain "sacco-loan-service/internal/domain/member"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) GetByMemberID(ctx context.Context, memberID string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&out)
	if res.Error != nil {
		if res.Error == gorm.ErrRecordNotFound {
			return nil, memberDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

// AddToSavings increments the balance with a single UPDATE, so it never
// depends on a previously read value.
func (r *MemberRepository) AddToSavings(ctx context.Context, memberID string, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&memberDomain.Member{}).
		Where("member_id = ?", memberID).
		UpdateColumn("savings_balance", gorm.Expr("savings_balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return memberDomain.ErrNotFound
	}
	return nil
}
