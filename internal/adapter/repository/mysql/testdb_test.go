package mysql

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	groupDomain "sacco-loan-service/internal/domain/group"
	grouploanDomain "sacco-loan-service/internal/domain/grouploan"
	ledgerDomain "sacco-loan-service/internal/domain/ledger"
	requestDomain "sacco-loan-service/internal/domain/loanrequest"
	memberDomain "sacco-loan-service/internal/domain/member"
	memberloanDomain "sacco-loan-service/internal/domain/memberloan"
)

// openTestDB gives each test an in-memory sqlite database with the full
// schema. TranslateError maps driver duplicate-key errors onto
// gorm.ErrDuplicatedKey, which the penalty-run guard depends on.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&groupDomain.Group{},
		&memberDomain.Member{},
		&requestDomain.GroupLoanRequest{},
		&requestDomain.MemberAllocationRequest{},
		&grouploanDomain.GroupLoan{},
		&memberloanDomain.MemberLoan{},
		&ledgerDomain.ProcessingFeeEntry{},
		&ledgerDomain.InterestEntry{},
		&ledgerDomain.PenaltyEntry{},
		&ledgerDomain.PenaltyRun{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return v
}
