package mysql

import (
	"context"
	"errors"
	"testing"

	grouploanDomain "sacco-loan-service/internal/domain/grouploan"
	"sacco-loan-service/pkg/id"
)

func makeGroupLoan(t *testing.T, groupID string, order int) *grouploanDomain.GroupLoan {
	t.Helper()
	return &grouploanDomain.GroupLoan{
		GroupLoanID:        id.NewID32(),
		RequestID:          id.NewID32(),
		GroupID:            groupID,
		Principal:          dec(t, "500000"),
		OutstandingBalance: dec(t, "500000"),
		AllocationOrder:    order,
		State:              grouploanDomain.StateActive,
		ApprovedBy:         id.NewID32(),
	}
}

func TestGroupLoanRepository_CountActiveByGroupID(t *testing.T) {
	db := openTestDB(t)
	repo := NewGroupLoanRepository(db)
	ctx := context.Background()

	groupID := id.NewID32()
	otherGroup := id.NewID32()

	first := makeGroupLoan(t, groupID, 1)
	second := makeGroupLoan(t, groupID, 2)
	foreign := makeGroupLoan(t, otherGroup, 1)
	for _, l := range []*grouploanDomain.GroupLoan{first, second, foreign} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	n, err := repo.CountActiveByGroupID(ctx, groupID)
	if err != nil {
		t.Fatalf("CountActiveByGroupID: %v", err)
	}
	if n != 2 {
		t.Fatalf("active count = %d, want 2", n)
	}

	// Closing one loan frees a slot.
	second.State = grouploanDomain.StateClosed
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save: %v", err)
	}
	n, err = repo.CountActiveByGroupID(ctx, groupID)
	if err != nil {
		t.Fatalf("CountActiveByGroupID: %v", err)
	}
	if n != 1 {
		t.Fatalf("active count after close = %d, want 1", n)
	}
}

func TestGroupLoanRepository_GetByGroupLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewGroupLoanRepository(db)
	ctx := context.Background()

	l := makeGroupLoan(t, id.NewID32(), 1)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByGroupLoanIDForUpdate(ctx, l.GroupLoanID)
	if err != nil {
		t.Fatalf("GetByGroupLoanIDForUpdate: %v", err)
	}
	if got.ID != l.ID || !got.Principal.Equal(dec(t, "500000")) {
		t.Fatalf("round-trip mismatch: %+v", got)
	}

	_, err = repo.GetByGroupLoanID(ctx, id.NewID32())
	if !errors.Is(err, grouploanDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
