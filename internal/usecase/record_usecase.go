package usecase

import (
	"context"
	"time"

	"dietlog/internal/domain/entity"
)

// FoodMode selects which food reference a record form fills.
type FoodMode string

const (
	FoodModeOfficial FoodMode = "official"
	FoodModeCustom   FoodMode = "custom"
	FoodModeManual   FoodMode = "manual"
)

// RecordForm is the add/edit record form. Macros are per unit; for official and
// custom modes they come from the catalog and the submitted ones are ignored.
type RecordForm struct {
	Mode           FoodMode `json:"mode" form:"mode" validate:"required,oneof=official custom manual"`
	OfficialFoodID int64    `json:"official_food_id" form:"official_food_id" validate:"gte=0"`
	CustomFoodID   int64    `json:"custom_food_id" form:"custom_food_id" validate:"gte=0"`
	ManualName     string   `json:"manual_name" form:"manual_name" validate:"max=100"`
	RecordTime     string   `json:"record_time" form:"record_time"`
	Quantity       float64  `json:"quantity" form:"quantity" validate:"gte=0"`
	Calories       *float64 `json:"calories" form:"calories" validate:"omitempty,gte=0"`
	Carbs          *float64 `json:"carbs" form:"carbs" validate:"omitempty,gte=0"`
	Protein        *float64 `json:"protein" form:"protein" validate:"omitempty,gte=0"`
	Fat            *float64 `json:"fat" form:"fat" validate:"omitempty,gte=0"`
}

// RecordFormView is the initial state of the add/edit screen.
type RecordFormView struct {
	Editing       bool                  `json:"editing"`
	EditID        int64                 `json:"edit_id,omitempty"`
	Form          RecordForm            `json:"form"`
	OfficialFoods []entity.OfficialFood `json:"official_foods"`
	CustomFoods   []entity.CustomFood   `json:"custom_foods"`
}

// RecordRow is one rendered record.
type RecordRow struct {
	Record entity.DietRecord `json:"record"`
	Label  string            `json:"label"`
	Time   string            `json:"time"`
}

// RecordGroup is one calendar day of the full list.
type RecordGroup struct {
	Date    string      `json:"date"`
	Weekday string      `json:"weekday"`
	Records []RecordRow `json:"records"`
}

// RecordUsecase drives the add/edit record and all-records screens.
type RecordUsecase interface {
	// NewForm resolves editID from the store; a missing record yields a blank form.
	NewForm(ctx context.Context, editID int64, now time.Time) (*RecordFormView, error)

	// BuildPayload validates the form and scales per-unit macros by quantity.
	BuildPayload(form RecordForm) (*entity.DietRecordInput, error)

	// Submit creates when editID is 0, otherwise updates.
	Submit(ctx context.Context, editID int64, form RecordForm) error

	// Delete issues no request unless confirmed.
	Delete(ctx context.Context, id int64, confirmed bool) error

	ListGrouped(ctx context.Context) ([]RecordGroup, error)
}
