package usecase

import (
	"context"

	"dietlog/internal/domain/entity"
)

// Collection names one of the cached collections.
type Collection string

const (
	CollectionOfficialFoods Collection = "official_foods"
	CollectionCustomFoods   Collection = "custom_foods"
	CollectionRecords       Collection = "records"
)

// UnknownFoodName labels a record whose food is missing from the loaded catalogs.
const UnknownFoodName = "未知"

// Snapshot is a copy of the store state; callers may keep and modify it freely.
type Snapshot struct {
	OfficialFoods []entity.OfficialFood
	CustomFoods   []entity.CustomFood
	Records       []entity.DietRecord // newest first
	Loaded        bool
}

// StoreUsecase is the shared cache of the three collections a logged-in user
// needs. Only its methods mutate state.
type StoreUsecase interface {
	// FetchAllIfNeeded loads all three collections together, or none of them.
	// It is a no-op when not authenticated or already loaded; concurrent callers
	// share one in-flight load.
	FetchAllIfNeeded(ctx context.Context) error

	// Invalidate marks the data stale but keeps it for rendering.
	Invalidate()

	// Reset empties every collection; called when the session is cleared.
	Reset()

	// ApplyLocalDelete removes one record or custom food after a confirmed delete.
	ApplyLocalDelete(kind Collection, id int64) error
	ApplyLocalUpsertRecord(record entity.DietRecord)
	ApplyLocalUpsertCustomFood(food entity.CustomFood)

	Loaded() bool
	Snapshot() Snapshot
	FindRecord(id int64) (entity.DietRecord, bool)
	FindCustomFood(id int64) (entity.CustomFood, bool)
	FindOfficialFood(id int64) (entity.OfficialFood, bool)

	// FoodName resolves a record's food against the loaded catalogs, or UnknownFoodName.
	FoodName(record entity.DietRecord) string

	// RecordLabel renders "<name>：<kcal> kcal" with the calories rounded.
	RecordLabel(record entity.DietRecord) string

	// Subscribe registers an observer called after every committed change.
	Subscribe(observer func(Snapshot)) (unsubscribe func())
}
