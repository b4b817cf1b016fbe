package usecase

import (
	"context"

	"dietlog/internal/domain/entity"
)

// FoodForm is the add/edit custom food form; nil numbers mean "not filled".
type FoodForm struct {
	Name     string   `json:"name" form:"name" validate:"max=100"`
	Calories *float64 `json:"calories" form:"calories" validate:"omitempty,gte=0"`
	Protein  *float64 `json:"protein" form:"protein" validate:"omitempty,gte=0"`
	Fat      *float64 `json:"fat" form:"fat" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs" form:"carbs" validate:"omitempty,gte=0"`
}

// FoodFormView is the initial state of the add/edit food screen.
type FoodFormView struct {
	Editing bool     `json:"editing"`
	EditID  int64    `json:"edit_id,omitempty"`
	Form    FoodForm `json:"form"`
}

// FoodRow is one rendered custom food.
type FoodRow struct {
	Food  entity.CustomFood `json:"food"`
	Label string            `json:"label"`
}

// FoodUsecase drives the custom foods screens.
type FoodUsecase interface {
	List(ctx context.Context) ([]FoodRow, error)
	NewForm(ctx context.Context, editID int64) (*FoodFormView, error)
	Submit(ctx context.Context, editID int64, form FoodForm) error
	Delete(ctx context.Context, id int64, confirmed bool) error
}
