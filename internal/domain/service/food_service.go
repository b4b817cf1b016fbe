package service

import (
	"context"

	"dietlog/internal/domain/entity"
)

// CustomFoodService is the per-user food catalog backend.
type CustomFoodService interface {
	ListCustomFoods(ctx context.Context, userID entity.UserID) ([]entity.CustomFood, error)

	// CreateCustomFood and UpdateCustomFood return the stored entity when the
	// service echoes it, nil otherwise. A 409 signals a duplicate name.
	CreateCustomFood(ctx context.Context, input entity.CustomFoodInput) (*entity.CustomFood, error)
	UpdateCustomFood(ctx context.Context, id int64, input entity.CustomFoodInput) (*entity.CustomFood, error)
	DeleteCustomFood(ctx context.Context, id int64) error
}
