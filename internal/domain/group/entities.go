package group

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("group not found")

// Group is the savings group row. The approval flow locks this row to
// serialize concurrent approvals for the same group.
type Group struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	GroupID   string         `gorm:"size:32;uniqueIndex:ux_groups_group_id" json:"group_id"`
	Name      string         `gorm:"size:128" json:"name"`
	BranchID  string         `gorm:"size:32;index" json:"branch_id"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Group) TableName() string { return "sacco_groups" }
