package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"sacco-loan-service/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type decisionReq struct {
	ActorID string `json:"actor_id" validate:"required,hex32"`
}

func (h *ApprovalHandler) ApproveLoanRequest(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Approve(c.Request().Context(), approval.ApproveInput{
		RequestID:  requestID,
		ApprovedBy: req.ActorID,
	})
	if err != nil {
		// Name member and step for a failed posting; the request stayed
		// PENDING, so the caller may retry as-is.
		var lpe *approval.LedgerPostingError
		if errors.As(err, &lpe) {
			return c.JSON(statusFor(err), ErrorResponse{
				Error: "ledger posting failed, approval rolled back",
				Details: []FieldError{
					{Field: "member_id", Message: lpe.MemberID},
					{Field: "step", Message: lpe.Step},
				},
			})
		}
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApprovalHandler) RejectLoanRequest(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Reject(c.Request().Context(), approval.RejectInput{
		RequestID:  requestID,
		RejectedBy: req.ActorID,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
