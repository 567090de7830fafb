package mysql

import (
	"context"
	"errors"
	"testing"

	groupDomain "sacco-loan-service/internal/domain/group"
	memberDomain "sacco-loan-service/internal/domain/member"
	"sacco-loan-service/internal/domain/uow"
	"sacco-loan-service/pkg/id"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)
	ctx := context.Background()

	memberID := id.NewID32()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Members.Create(ctx, &memberDomain.Member{MemberID: memberID, SavingsBalance: dec(t, "0")})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if _, err := NewMemberRepository(db).GetByMemberID(ctx, memberID); err != nil {
		t.Fatalf("member not committed: %v", err)
	}
}

func TestGormUoW_WithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("mid-flight failure")
	memberID := id.NewID32()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Members.Create(ctx, &memberDomain.Member{MemberID: memberID, SavingsBalance: dec(t, "0")}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped cause, got %v", err)
	}

	if _, err := NewMemberRepository(db).GetByMemberID(ctx, memberID); !errors.Is(err, memberDomain.ErrNotFound) {
		t.Fatalf("member survived rollback: %v", err)
	}
}

func TestGormUoW_WithinGroupTx(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)
	ctx := context.Background()

	groupID := id.NewID32()
	if err := NewGroupRepository(db).Create(ctx, &groupDomain.Group{GroupID: groupID, Name: "Umoja"}); err != nil {
		t.Fatalf("create group: %v", err)
	}

	var got *groupDomain.Group
	err := guow.WithinGroupTx(ctx, groupID, func(r uow.Repos, g *groupDomain.Group) error {
		got = g
		return nil
	})
	if err != nil {
		t.Fatalf("WithinGroupTx: %v", err)
	}
	if got == nil || got.GroupID != groupID {
		t.Fatalf("group not passed through: %+v", got)
	}
}

func TestGormUoW_WithinGroupTx_UnknownGroup(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinGroupTx(context.Background(), id.NewID32(), func(r uow.Repos, g *groupDomain.Group) error {
		t.Fatal("fn must not run for an unknown group")
		return nil
	})
	if !errors.Is(err, groupDomain.ErrNotFound) {
		t.Fatalf("want group.ErrNotFound, got %v", err)
	}
}
