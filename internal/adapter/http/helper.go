package http

import (
	"errors"
	"net/http"

	"sacco-loan-service/internal/domain/allocation"
	"sacco-loan-service/internal/domain/group"
	"sacco-loan-service/internal/domain/grouploan"
	"sacco-loan-service/internal/domain/ledger"
	"sacco-loan-service/internal/domain/loanrequest"
	"sacco-loan-service/internal/domain/member"
	"sacco-loan-service/internal/domain/memberloan"
	"sacco-loan-service/internal/usecase/approval"
	"sacco-loan-service/internal/usecase/distribution"
	"sacco-loan-service/internal/usecase/request"
)

// statusFor maps domain failures onto HTTP codes. Anything unmapped is a
// store-level failure and surfaces as 502 so callers can tell "you sent
// garbage" apart from "the database refused".
func statusFor(err error) int {
	switch {
	case errors.Is(err, loanrequest.ErrNotFound),
		errors.Is(err, group.ErrNotFound),
		errors.Is(err, grouploan.ErrNotFound),
		errors.Is(err, member.ErrNotFound),
		errors.Is(err, memberloan.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loanrequest.ErrAlreadyDecided),
		errors.Is(err, grouploan.ErrLoanCapExceeded),
		errors.Is(err, grouploan.ErrAlreadyFinalized),
		errors.Is(err, ledger.ErrRunAlreadyApplied):
		return http.StatusConflict
	case errors.Is(err, allocation.ErrNonPositivePrincipal),
		errors.Is(err, allocation.ErrNegativeNetCash),
		errors.Is(err, allocation.ErrOverAllocation),
		errors.Is(err, approval.ErrMissingRequestID),
		errors.Is(err, approval.ErrMissingActorID),
		errors.Is(err, approval.ErrNoAllocations),
		errors.Is(err, request.ErrMissingGroupID),
		errors.Is(err, request.ErrMissingActorID),
		errors.Is(err, request.ErrInvalidAmount),
		errors.Is(err, request.ErrNoAllocationLines),
		errors.Is(err, distribution.ErrMissingGroupLoanID),
		errors.Is(err, distribution.ErrMissingActorID),
		errors.Is(err, distribution.ErrNoAdjustments),
		errors.Is(err, distribution.ErrNonPositiveAmount),
		errors.Is(err, distribution.ErrForeignMemberLoan),
		errors.Is(err, distribution.ErrLoanNotActive):
		return http.StatusUnprocessableEntity
	}
	var lpe *approval.LedgerPostingError
	if errors.As(err, &lpe) {
		return http.StatusInternalServerError
	}
	return http.StatusBadGateway
}
