package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler serves the operational endpoints that need no usecase behind them.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Health answers liveness checks. The timestamp lets a poller spot a frozen
// but still-listening process.
func (h *Handler) Health(c echo.Context) error {
	body := map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	}
	return c.JSON(http.StatusOK, body)
}
