package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sacco-loan-service/internal/usecase/distribution"
	"sacco-loan-service/internal/usecase/penalty"
)

// Envelope is the response shape for the function-style endpoints. Business
// failures still answer 200 with ok=false so queue workers and schedulers can
// distinguish "call delivered, operation refused" from transport trouble.
type Envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type FunctionHandler struct {
	dist *distribution.Usecase
	pen  *penalty.Usecase
}

func NewFunctionHandler(dist *distribution.Usecase, pen *penalty.Usecase) *FunctionHandler {
	return &FunctionHandler{dist: dist, pen: pen}
}

type finalizeDistributionReq struct {
	GroupLoanID string                    `json:"group_loan_id" validate:"required,hex32"`
	ProcessorID string                    `json:"processor_id"  validate:"required,hex32"`
	Allocations []distribution.Adjustment `json:"allocations"   validate:"required,min=1"`
}

func (h *FunctionHandler) FinalizeDistribution(c echo.Context) error {
	var req finalizeDistributionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Envelope{OK: false, Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, Envelope{OK: false, Error: "validation failed: " + err.Error()})
	}

	dto, err := h.dist.Finalize(c.Request().Context(), distribution.FinalizeInput{
		GroupLoanID: req.GroupLoanID,
		ProcessorID: req.ProcessorID,
		Adjustments: req.Allocations,
	})
	if err != nil {
		if status := statusFor(err); status >= http.StatusInternalServerError {
			return c.JSON(status, Envelope{OK: false, Error: err.Error()})
		}
		return c.JSON(http.StatusOK, Envelope{OK: false, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, Envelope{OK: true, Data: dto})
}

func (h *FunctionHandler) ApplyWeeklyPenalties(c echo.Context) error {
	dto, err := h.pen.ApplyWeekly(c.Request().Context())
	if err != nil {
		if status := statusFor(err); status >= http.StatusInternalServerError {
			return c.JSON(status, Envelope{OK: false, Error: err.Error()})
		}
		return c.JSON(http.StatusOK, Envelope{OK: false, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, Envelope{OK: true, Data: dto})
}
