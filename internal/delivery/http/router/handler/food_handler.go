package handler

import (
	"net/http"

	"dietlog/internal/delivery/http/response"
	"dietlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FoodHandler serves the custom foods and add/edit food screens.
type FoodHandler struct {
	foods usecase.FoodUsecase
}

// NewFoodHandler is the constructor for FoodHandler, injected by Fx.
func NewFoodHandler(foods usecase.FoodUsecase) *FoodHandler {
	return &FoodHandler{foods: foods}
}

func (h *FoodHandler) List(c echo.Context) error {
	rows, err := h.foods.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

func (h *FoodHandler) Form(c echo.Context) error {
	editID, err := queryID(c)
	if err != nil {
		return err
	}

	view, err := h.foods.NewForm(c.Request().Context(), editID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

func (h *FoodHandler) Create(c echo.Context) error {
	return h.submit(c, 0, http.StatusCreated)
}

func (h *FoodHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	return h.submit(c, id, http.StatusOK)
}

func (h *FoodHandler) submit(c echo.Context, editID int64, status int) error {
	var form usecase.FoodForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}
	if err := c.Validate(&form); err != nil {
		return err
	}

	if err := h.foods.Submit(c.Request().Context(), editID, form); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, status, response.Navigate{Redirect: usecase.RouteCustomFoods}, "")
}

func (h *FoodHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.foods.Delete(c.Request().Context(), id, confirmed(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}
