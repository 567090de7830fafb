package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	groupDomain "sacco-loan-service/internal/domain/group"
	grouploanDomain "sacco-loan-service/internal/domain/grouploan"
	requestDomain "sacco-loan-service/internal/domain/loanrequest"
	memberDomain "sacco-loan-service/internal/domain/member"
	memberloanDomain "sacco-loan-service/internal/domain/memberloan"
	"sacco-loan-service/internal/usecase/approval"
	"sacco-loan-service/pkg/id"
)

// Full approval flow against a real database: the reference scenario of a
// 500,000 request split five ways, plus the cap and rollback guarantees.

type flowFixture struct {
	db      *gorm.DB
	uc      *approval.Usecase
	groupID string
	members []string
}

func newFlowFixture(t *testing.T, memberCount int) *flowFixture {
	t.Helper()
	db := openTestDB(t)
	ctx := context.Background()

	groupID := id.NewID32()
	if err := NewGroupRepository(db).Create(ctx, &groupDomain.Group{GroupID: groupID, Name: "Chama Moja"}); err != nil {
		t.Fatalf("seed group: %v", err)
	}
	members := make([]string, 0, memberCount)
	memberRepo := NewMemberRepository(db)
	for i := 0; i < memberCount; i++ {
		mid := id.NewID32()
		if err := memberRepo.Create(ctx, &memberDomain.Member{MemberID: mid, GroupID: groupID, SavingsBalance: decimal.Zero}); err != nil {
			t.Fatalf("seed member: %v", err)
		}
		members = append(members, mid)
	}

	uc := approval.NewUsecase(NewLoanRequestRepository(db), NewGormUoW(db))
	return &flowFixture{db: db, uc: uc, groupID: groupID, members: members}
}

// seedRequest persists a pending request splitting total evenly over the
// given member ids.
func (f *flowFixture) seedRequest(t *testing.T, total string, memberIDs []string) string {
	t.Helper()
	ctx := context.Background()
	repo := NewLoanRequestRepository(f.db)

	totalDec := dec(t, total)
	per := totalDec.Div(decimal.NewFromInt(int64(len(memberIDs))))
	requestID := id.NewID32()
	req := &requestDomain.GroupLoanRequest{
		RequestID:           requestID,
		GroupID:             f.groupID,
		RequestedAmount:     totalDec,
		RequestedBy:         id.NewID32(),
		EligibleMemberCount: len(memberIDs),
		Status:              requestDomain.StatusPending,
		DateRequested:       time.Now().UTC(),
	}
	allocs := make([]requestDomain.MemberAllocationRequest, 0, len(memberIDs))
	for _, m := range memberIDs {
		allocs = append(allocs, requestDomain.MemberAllocationRequest{
			AllocationID:    id.NewID32(),
			MemberID:        m,
			AmountRequested: per,
			Status:          requestDomain.AllocationPending,
		})
	}
	if err := repo.Create(ctx, req, allocs); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	return requestID
}

func TestApprovalFlow_ReferenceScenario(t *testing.T) {
	f := newFlowFixture(t, 5)
	ctx := context.Background()
	requestID := f.seedRequest(t, "500000", f.members)

	dto, err := f.uc.Approve(ctx, approval.ApproveInput{RequestID: requestID, ApprovedBy: id.NewID32()})
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if len(dto.MemberLoans) != 5 {
		t.Fatalf("want 5 member loans in dto, got %d", len(dto.MemberLoans))
	}

	gl, err := NewGroupLoanRepository(f.db).GetByGroupLoanID(ctx, dto.GroupLoanID)
	if err != nil {
		t.Fatalf("group loan missing: %v", err)
	}
	if !gl.Principal.Equal(dec(t, "500000")) || !gl.OutstandingBalance.Equal(dec(t, "500000")) || gl.AllocationOrder != 1 {
		t.Fatalf("group loan: %+v", gl)
	}

	loans, err := NewMemberLoanRepository(f.db).ListByGroupLoanID(ctx, gl.ID)
	if err != nil {
		t.Fatalf("ListByGroupLoanID: %v", err)
	}
	if len(loans) != 5 {
		t.Fatalf("want 5 member loans, got %d", len(loans))
	}
	ledgerRepo := NewLedgerRepository(f.db)
	for i, ml := range loans {
		if ml.MemberID != f.members[i] {
			t.Errorf("loan %d for %s, want %s (creation order)", i, ml.MemberID, f.members[i])
		}
		if !ml.Principal.Equal(dec(t, "100000")) || !ml.InterestAmount.Equal(dec(t, "10000")) ||
			!ml.ProcessingFee.Equal(dec(t, "10000")) || !ml.OpeningTopup.Equal(dec(t, "10000")) ||
			!ml.NetCashDisbursed.Equal(dec(t, "70000")) || !ml.RemainingBalance.Equal(dec(t, "100000")) ||
			ml.WeeksDue != 10 {
			t.Errorf("member loan amounts: %+v", ml)
		}
		fees, _ := ledgerRepo.ListFeesByMemberLoanID(ctx, ml.ID)
		ints, _ := ledgerRepo.ListInterestByMemberLoanID(ctx, ml.ID)
		if len(fees) != 1 || !fees[0].Amount.Equal(dec(t, "10000")) {
			t.Errorf("fee ledger for loan %d: %+v", i, fees)
		}
		if len(ints) != 1 || !ints[0].Amount.Equal(dec(t, "10000")) {
			t.Errorf("interest ledger for loan %d: %+v", i, ints)
		}
	}

	memberRepo := NewMemberRepository(f.db)
	for _, m := range f.members {
		got, err := memberRepo.GetByMemberID(ctx, m)
		if err != nil {
			t.Fatalf("member %s: %v", m, err)
		}
		if !got.SavingsBalance.Equal(dec(t, "10000")) {
			t.Errorf("savings for %s = %s, want 10000", m, got.SavingsBalance)
		}
	}

	req, err := NewLoanRequestRepository(f.db).GetByRequestID(ctx, requestID)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Status != requestDomain.StatusApproved {
		t.Fatalf("request status = %s, want APPROVED", req.Status)
	}
}

// Approvals run sequentially here. sqlite serializes writers, so the
// SELECT ... FOR UPDATE on the group row is a no-op on this stack; the
// concurrent cap race is only exercised against MySQL.
func TestApprovalFlow_LoanCap(t *testing.T) {
	f := newFlowFixture(t, 2)
	ctx := context.Background()
	actor := id.NewID32()

	first := f.seedRequest(t, "100000", f.members[:1])
	second := f.seedRequest(t, "100000", f.members[1:])
	third := f.seedRequest(t, "100000", f.members[:1])

	d1, err := f.uc.Approve(ctx, approval.ApproveInput{RequestID: first, ApprovedBy: actor})
	if err != nil {
		t.Fatalf("first approve: %v", err)
	}
	d2, err := f.uc.Approve(ctx, approval.ApproveInput{RequestID: second, ApprovedBy: actor})
	if err != nil {
		t.Fatalf("second approve: %v", err)
	}

	gl1, _ := NewGroupLoanRepository(f.db).GetByGroupLoanID(ctx, d1.GroupLoanID)
	gl2, _ := NewGroupLoanRepository(f.db).GetByGroupLoanID(ctx, d2.GroupLoanID)
	if gl1.AllocationOrder != 1 || gl2.AllocationOrder != 2 {
		t.Fatalf("allocation orders = %d, %d; want 1, 2", gl1.AllocationOrder, gl2.AllocationOrder)
	}

	_, err = f.uc.Approve(ctx, approval.ApproveInput{RequestID: third, ApprovedBy: actor})
	if !errors.Is(err, grouploanDomain.ErrLoanCapExceeded) {
		t.Fatalf("want ErrLoanCapExceeded, got %v", err)
	}
	if n, _ := NewGroupLoanRepository(f.db).CountActiveByGroupID(ctx, f.groupID); n != 2 {
		t.Fatalf("active loans = %d, cap is 2", n)
	}
	req, _ := NewLoanRequestRepository(f.db).GetByRequestID(ctx, third)
	if req.Status != requestDomain.StatusPending {
		t.Fatalf("blocked request flipped to %s", req.Status)
	}

	// Close one loan and the blocked request goes through.
	gl2.State = grouploanDomain.StateClosed
	if err := NewGroupLoanRepository(f.db).Save(ctx, gl2); err != nil {
		t.Fatalf("close loan: %v", err)
	}
	if _, err := f.uc.Approve(ctx, approval.ApproveInput{RequestID: third, ApprovedBy: actor}); err != nil {
		t.Fatalf("approve after close: %v", err)
	}
}

// A posting failure for member k must leave zero rows behind and keep the
// request PENDING, so the exact same approval can be retried once the cause
// is fixed.
func TestApprovalFlow_RollbackAndRetry(t *testing.T) {
	f := newFlowFixture(t, 2)
	ctx := context.Background()
	actor := id.NewID32()

	// Third member is on the wish-list but missing from the members table,
	// so the savings increment for it fails mid-transaction.
	ghost := id.NewID32()
	wishList := append(append([]string{}, f.members...), ghost)
	requestID := f.seedRequest(t, "300000", wishList)

	_, err := f.uc.Approve(ctx, approval.ApproveInput{RequestID: requestID, ApprovedBy: actor})
	var lpe *approval.LedgerPostingError
	if !errors.As(err, &lpe) {
		t.Fatalf("want LedgerPostingError, got %v", err)
	}
	if lpe.MemberID != ghost {
		t.Fatalf("failing member = %s, want %s", lpe.MemberID, ghost)
	}

	// Nothing survived the rollback.
	var loanCount int64
	f.db.Model(&memberloanDomain.MemberLoan{}).Count(&loanCount)
	if loanCount != 0 {
		t.Fatalf("member loans after rollback = %d, want 0", loanCount)
	}
	if n, _ := NewGroupLoanRepository(f.db).CountActiveByGroupID(ctx, f.groupID); n != 0 {
		t.Fatalf("group loans after rollback = %d, want 0", n)
	}
	req, _ := NewLoanRequestRepository(f.db).GetByRequestID(ctx, requestID)
	if req.Status != requestDomain.StatusPending {
		t.Fatalf("request status = %s, want PENDING", req.Status)
	}
	for _, m := range f.members {
		got, _ := NewMemberRepository(f.db).GetByMemberID(ctx, m)
		if !got.SavingsBalance.Equal(decimal.Zero) {
			t.Fatalf("savings for %s = %s after rollback, want 0", m, got.SavingsBalance)
		}
	}

	// Fix the cause and retry: exactly one group loan, exactly three member
	// loans, no duplicates from the failed attempt.
	if err := NewMemberRepository(f.db).Create(ctx, &memberDomain.Member{MemberID: ghost, GroupID: f.groupID, SavingsBalance: decimal.Zero}); err != nil {
		t.Fatalf("create ghost member: %v", err)
	}
	dto, err := f.uc.Approve(ctx, approval.ApproveInput{RequestID: requestID, ApprovedBy: actor})
	if err != nil {
		t.Fatalf("retry approve: %v", err)
	}
	if len(dto.MemberLoans) != 3 {
		t.Fatalf("retry created %d member loans, want 3", len(dto.MemberLoans))
	}
	f.db.Model(&memberloanDomain.MemberLoan{}).Count(&loanCount)
	if loanCount != 3 {
		t.Fatalf("member loans after retry = %d, want 3", loanCount)
	}
	if n, _ := NewGroupLoanRepository(f.db).CountActiveByGroupID(ctx, f.groupID); n != 1 {
		t.Fatalf("group loans after retry = %d, want 1", n)
	}
}
