package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"sacco-loan-service/internal/usecase/request"
)

type RequestHandler struct{ uc *request.Usecase }

func NewRequestHandler(uc *request.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type allocationLineReq struct {
	MemberID string          `json:"member_id" validate:"required,hex32"`
	Amount   decimal.Decimal `json:"amount"`
}

type createLoanRequestReq struct {
	RequestedAmount decimal.Decimal     `json:"requested_amount"`
	RequestedBy     string              `json:"requested_by" validate:"required,hex32"`
	Allocations     []allocationLineReq `json:"allocations"  validate:"required,min=1,dive"`
}

func (h *RequestHandler) CreateLoanRequest(c echo.Context) error {
	groupID := c.Param("group_id")
	if groupID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing group_id path param"})
	}
	var req createLoanRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := request.CreateInput{
		GroupID:         groupID,
		RequestedAmount: req.RequestedAmount,
		RequestedBy:     req.RequestedBy,
	}
	for _, line := range req.Allocations {
		in.Allocations = append(in.Allocations, request.AllocationLine{MemberID: line.MemberID, Amount: line.Amount})
	}

	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RequestHandler) GetLoanRequest(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), requestID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
