package service

import (
	"context"

	"dietlog/internal/domain/entity"
)

// DietRecordService is the diet-record backend, which also serves the official catalog.
type DietRecordService interface {
	ListOfficialFoods(ctx context.Context) ([]entity.OfficialFood, error)

	// ListDietRecords returns every record owned by the session user.
	ListDietRecords(ctx context.Context) ([]entity.DietRecord, error)
	CreateDietRecord(ctx context.Context, input entity.DietRecordInput) error
	UpdateDietRecord(ctx context.Context, id int64, input entity.DietRecordInput) error
	DeleteDietRecord(ctx context.Context, id int64) error
}
