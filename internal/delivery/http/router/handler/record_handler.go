package handler

import (
	"net/http"
	"time"

	"dietlog/internal/delivery/http/response"
	"dietlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecordHandler serves the all-records and add/edit record screens.
type RecordHandler struct {
	records usecase.RecordUsecase
	now     func() time.Time
}

// NewRecordHandler is the constructor for RecordHandler, injected by Fx.
func NewRecordHandler(records usecase.RecordUsecase) *RecordHandler {
	return &RecordHandler{records: records, now: time.Now}
}

// List returns every record grouped by day, newest first.
func (h *RecordHandler) List(c echo.Context) error {
	groups, err := h.records.ListGrouped(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groups, "")
}

// Form returns the add form, or the edit form for ?id=.
func (h *RecordHandler) Form(c echo.Context) error {
	editID, err := queryID(c)
	if err != nil {
		return err
	}

	view, err := h.records.NewForm(c.Request().Context(), editID, h.now())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

func (h *RecordHandler) Create(c echo.Context) error {
	return h.submit(c, 0, http.StatusCreated)
}

func (h *RecordHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	return h.submit(c, id, http.StatusOK)
}

func (h *RecordHandler) submit(c echo.Context, editID int64, status int) error {
	var form usecase.RecordForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid record input")
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	if err := h.records.Submit(c.Request().Context(), editID, form); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, status, response.Navigate{Redirect: usecase.RouteDashboard}, "")
}

func (h *RecordHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.records.Delete(c.Request().Context(), id, confirmed(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}
