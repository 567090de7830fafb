package mysql

import (
	"context"

	"gorm.io/gorm"

	groupDomain "sacco-loan-service/internal/domain/group"
)

type GroupRepository struct{ db *gorm.DB }

func NewGroupRepository(db *gorm.DB) *GroupRepository { return &GroupRepository{db: db} }

func (r *GroupRepository) Create(ctx context.Context, g *groupDomain.Group) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GroupRepository) GetByGroupID(ctx context.Context, groupID string) (*groupDomain.Group, error) {
	var out groupDomain.Group
	res := r.db.WithContext(ctx).Where("group_id = ?", groupID).First(&out)
	if res.Error != nil {
		if res.Error == gorm.ErrRecordNotFound {
			return nil, groupDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

// GetByGroupIDForUpdate takes a row lock; the caller must be inside a tx.
func (r *GroupRepository) GetByGroupIDForUpdate(ctx context.Context, groupID string) (*groupDomain.Group, error) {
	var out groupDomain.Group
	res := forUpdate(r.db.WithContext(ctx)).
		Where("group_id = ?", groupID).
		First(&out)
	if res.Error != nil {
		if res.Error == gorm.ErrRecordNotFound {
			return nil, groupDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}
