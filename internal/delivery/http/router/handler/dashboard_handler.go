package handler

import (
	"net/http"
	"time"

	"dietlog/internal/delivery/http/response"
	"dietlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler serves the home screen.
type DashboardHandler struct {
	dashboard usecase.DashboardUsecase
	now       func() time.Time
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(dashboard usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, now: time.Now}
}

func (h *DashboardHandler) Today(c echo.Context) error {
	view, err := h.dashboard.Today(c.Request().Context(), h.now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}
