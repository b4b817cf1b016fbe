package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"dietlog/internal/domain/entity"
	domainerrors "dietlog/internal/domain/errors"
	"dietlog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRecordService(f *fixture) usecase.RecordUsecase {
	return NewRecordService(RecordParams{Store: f.store, Records: f.records, Gate: f.gate, Logger: f.logger})
}

func TestRecordService_BuildPayload_ScalesCatalogMacros(t *testing.T) {
	f := loadedFixture(t)
	srv := newTestRecordService(f)

	payload, err := srv.BuildPayload(usecase.RecordForm{
		Mode:           usecase.FoodModeOfficial,
		OfficialFoodID: 7,
		RecordTime:     "2025-06-06T08:30",
		Quantity:       2,
		// ignored for catalog foods
		Calories: floatPtr(1),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.Macros{Calories: 500, Carbs: 60, Protein: 20, Fat: 16}, payload.Sums)

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, "2025-06-06 08:30:00", raw["record_time"])
	assert.EqualValues(t, 500, raw["calorie_sum"])
	assert.EqualValues(t, 60, raw["carb_sum"])
	assert.EqualValues(t, 20, raw["protein_sum"])
	assert.EqualValues(t, 16, raw["fat_sum"])
	assert.EqualValues(t, 7, raw["official_food_id"])
}

func TestRecordService_BuildPayload_SetsOnlySelectedReference(t *testing.T) {
	f := loadedFixture(t)
	srv := newTestRecordService(f)

	tests := []struct {
		name string
		form usecase.RecordForm
		kind entity.FoodRefKind
	}{
		{
			name: "custom ignores stale official id",
			form: usecase.RecordForm{Mode: usecase.FoodModeCustom, OfficialFoodID: 7, CustomFoodID: 5, ManualName: "x", RecordTime: "2025-06-06T12:00"},
			kind: entity.FoodRefCustom,
		},
		{
			name: "manual ignores catalog ids",
			form: usecase.RecordForm{
				Mode: usecase.FoodModeManual, OfficialFoodID: 7, CustomFoodID: 5, ManualName: " banana ", RecordTime: "2025-06-06T12:00",
				Quantity: 1.5, Calories: floatPtr(100), Carbs: floatPtr(20), Protein: floatPtr(2), Fat: floatPtr(0),
			},
			kind: entity.FoodRefManual,
		},
		{
			name: "official ignores manual name",
			form: usecase.RecordForm{Mode: usecase.FoodModeOfficial, OfficialFoodID: 7, ManualName: "x", RecordTime: "2025-06-06T12:00"},
			kind: entity.FoodRefOfficial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := srv.BuildPayload(tt.form)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, payload.Food.Kind())

			body, err := json.Marshal(payload)
			require.NoError(t, err)

			var raw map[string]any
			require.NoError(t, json.Unmarshal(body, &raw))

			set := 0
			for _, key := range []string{"official_food_id", "custom_food_id", "manual_name"} {
				if raw[key] != nil {
					set++
				}
			}
			assert.Equal(t, 1, set)
		})
	}
}

func TestRecordService_BuildPayload_ManualScalesFormMacros(t *testing.T) {
	f := loadedFixture(t)

	payload, err := newTestRecordService(f).BuildPayload(usecase.RecordForm{
		Mode: usecase.FoodModeManual, ManualName: "banana", RecordTime: "2025-06-06T12:00",
		Quantity: 1.5, Calories: floatPtr(100), Carbs: floatPtr(20), Protein: floatPtr(2), Fat: floatPtr(0),
	})
	require.NoError(t, err)

	name, _ := payload.Food.ManualName()
	assert.Equal(t, "banana", name)
	assert.Equal(t, entity.Macros{Calories: 150, Carbs: 30, Protein: 3, Fat: 0}, payload.Sums)
}

func TestRecordService_BuildPayload_Validation(t *testing.T) {
	f := loadedFixture(t)
	srv := newTestRecordService(f)

	tests := []struct {
		name    string
		form    usecase.RecordForm
		wantErr error
	}{
		{
			name:    "missing time",
			form:    usecase.RecordForm{Mode: usecase.FoodModeOfficial, OfficialFoodID: 7},
			wantErr: domainerrors.ErrRecordTimeRequired,
		},
		{
			name:    "malformed time",
			form:    usecase.RecordForm{Mode: usecase.FoodModeOfficial, OfficialFoodID: 7, RecordTime: "tomorrow"},
			wantErr: domainerrors.ErrRecordTimeRequired,
		},
		{
			name:    "no official food selected",
			form:    usecase.RecordForm{Mode: usecase.FoodModeOfficial, RecordTime: "2025-06-06T08:30"},
			wantErr: domainerrors.ErrIncompleteRecord,
		},
		{
			name:    "official food not in catalog",
			form:    usecase.RecordForm{Mode: usecase.FoodModeOfficial, OfficialFoodID: 404, RecordTime: "2025-06-06T08:30"},
			wantErr: domainerrors.ErrIncompleteRecord,
		},
		{
			name:    "custom food not in catalog",
			form:    usecase.RecordForm{Mode: usecase.FoodModeCustom, CustomFoodID: 404, RecordTime: "2025-06-06T08:30"},
			wantErr: domainerrors.ErrIncompleteRecord,
		},
		{
			name:    "manual without name",
			form:    usecase.RecordForm{Mode: usecase.FoodModeManual, ManualName: " ", RecordTime: "2025-06-06T08:30", Calories: floatPtr(1), Carbs: floatPtr(1), Protein: floatPtr(1), Fat: floatPtr(1)},
			wantErr: domainerrors.ErrIncompleteRecord,
		},
		{
			name:    "manual without macros",
			form:    usecase.RecordForm{Mode: usecase.FoodModeManual, ManualName: "tea", RecordTime: "2025-06-06T08:30", Calories: floatPtr(1)},
			wantErr: domainerrors.ErrIncompleteRecord,
		},
		{
			name:    "negative quantity",
			form:    usecase.RecordForm{Mode: usecase.FoodModeOfficial, OfficialFoodID: 7, RecordTime: "2025-06-06T08:30", Quantity: -1},
			wantErr: domainerrors.ErrIncompleteRecord,
		},
		{
			name:    "unknown mode",
			form:    usecase.RecordForm{Mode: "barcode", RecordTime: "2025-06-06T08:30"},
			wantErr: domainerrors.ErrIncompleteRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.BuildPayload(tt.form)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordService_Submit_CreateInvalidatesStore(t *testing.T) {
	f := loadedFixture(t)
	srv := newTestRecordService(f)
	ctx := context.Background()

	f.records.EXPECT().CreateDietRecord(ctx, mock.MatchedBy(func(in entity.DietRecordInput) bool {
		id, ok := in.Food.OfficialFoodID()

		return ok && id == 7 && in.Quantity == 2 && in.RecordTime.Wire() == "2025-06-06 08:30:00"
	})).Return(nil)

	err := srv.Submit(ctx, 0, usecase.RecordForm{
		Mode: usecase.FoodModeOfficial, OfficialFoodID: 7, RecordTime: "2025-06-06T08:30", Quantity: 2,
	})

	require.NoError(t, err)
	assert.False(t, f.store.Loaded())
	assert.Len(t, f.store.Snapshot().Records, 4)
}

func TestRecordService_Submit_UpdateFailureKeepsStore(t *testing.T) {
	f := loadedFixture(t)
	srv := newTestRecordService(f)
	ctx := context.Background()

	f.records.EXPECT().UpdateDietRecord(ctx, int64(1), mock.Anything).Return(errors.New("500"))

	err := srv.Submit(ctx, 1, usecase.RecordForm{
		Mode: usecase.FoodModeOfficial, OfficialFoodID: 7, RecordTime: "2025-06-06T08:30", Quantity: 3,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUpdateRecordFailed)
	assert.True(t, f.store.Loaded())
}

func TestRecordService_Submit_CreateFailure(t *testing.T) {
	f := loadedFixture(t)
	ctx := context.Background()
	f.records.EXPECT().CreateDietRecord(ctx, mock.Anything).Return(errors.New("500"))

	err := newTestRecordService(f).Submit(ctx, 0, usecase.RecordForm{
		Mode: usecase.FoodModeCustom, CustomFoodID: 5, RecordTime: "2025-06-06T08:30",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "新增失敗，請檢查欄位或網路。", appErr.Message())
}

func TestRecordService_Submit_InvalidFormMakesNoCall(t *testing.T) {
	f := loadedFixture(t)

	err := newTestRecordService(f).Submit(context.Background(), 0, usecase.RecordForm{Mode: usecase.FoodModeOfficial})

	assert.ErrorIs(t, err, domainerrors.ErrRecordTimeRequired)
	assert.True(t, f.store.Loaded())
}

func TestRecordService_Submit_RejectsDoubleSubmit(t *testing.T) {
	f := loadedFixture(t)
	srv := newTestRecordService(f)
	entered := make(chan struct{})
	release := make(chan struct{})

	f.records.EXPECT().CreateDietRecord(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.DietRecordInput) error {
			close(entered)
			<-release

			return nil
		}).Once()

	form := usecase.RecordForm{Mode: usecase.FoodModeOfficial, OfficialFoodID: 7, RecordTime: "2025-06-06T08:30"}
	done := make(chan error, 1)
	go func() { done <- srv.Submit(context.Background(), 0, form) }()

	<-entered
	err := srv.Submit(context.Background(), 0, form)
	assert.ErrorIs(t, err, domainerrors.ErrSubmitInProgress)

	close(release)
	assert.NoError(t, <-done)
}

func TestRecordService_Delete(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		f := loadedFixture(t)

		err := newTestRecordService(f).Delete(context.Background(), 1, false)

		assert.ErrorIs(t, err, domainerrors.ErrConfirmationRequired)
		assert.Len(t, f.store.Snapshot().Records, 4)
	})

	t.Run("success patches store", func(t *testing.T) {
		f := loadedFixture(t)
		f.records.EXPECT().DeleteDietRecord(mock.Anything, int64(1)).Return(nil)

		require.NoError(t, newTestRecordService(f).Delete(context.Background(), 1, true))

		_, ok := f.store.FindRecord(1)
		assert.False(t, ok)
		assert.True(t, f.store.Loaded())
	})

	t.Run("failure leaves store unchanged", func(t *testing.T) {
		f := loadedFixture(t)
		f.records.EXPECT().DeleteDietRecord(mock.Anything, int64(1)).Return(errors.New("500"))

		err := newTestRecordService(f).Delete(context.Background(), 1, true)

		assert.ErrorIs(t, err, domainerrors.ErrDeleteFailed)
		_, ok := f.store.FindRecord(1)
		assert.True(t, ok)
	})
}

func TestRecordService_NewForm(t *testing.T) {
	now := time.Date(2025, 6, 6, 9, 41, 27, 0, time.Local)

	t.Run("new record defaults", func(t *testing.T) {
		f := loadedFixture(t)

		view, err := newTestRecordService(f).NewForm(context.Background(), 0, now)

		require.NoError(t, err)
		assert.False(t, view.Editing)
		assert.Equal(t, "2025-06-06T09:41", view.Form.RecordTime)
		assert.Equal(t, usecase.FoodModeOfficial, view.Form.Mode)
		assert.InDelta(t, 1.0, view.Form.Quantity, 0)
		assert.Len(t, view.OfficialFoods, 1)
		assert.Len(t, view.CustomFoods, 1)
	})

	t.Run("edit resolves per-unit figures", func(t *testing.T) {
		f := loadedFixture(t)

		view, err := newTestRecordService(f).NewForm(context.Background(), 1, now)

		require.NoError(t, err)
		assert.True(t, view.Editing)
		assert.Equal(t, usecase.FoodModeOfficial, view.Form.Mode)
		assert.Equal(t, int64(7), view.Form.OfficialFoodID)
		assert.Equal(t, "2025-06-06T08:30", view.Form.RecordTime)
		assert.InDelta(t, 2.0, view.Form.Quantity, 0)
		require.NotNil(t, view.Form.Calories)
		assert.InDelta(t, 250.0, *view.Form.Calories, 1e-9)
	})

	t.Run("edit manual record", func(t *testing.T) {
		f := loadedFixture(t)

		view, err := newTestRecordService(f).NewForm(context.Background(), 4, now)

		require.NoError(t, err)
		assert.Equal(t, usecase.FoodModeManual, view.Form.Mode)
		assert.Equal(t, "apple", view.Form.ManualName)
	})

	t.Run("missing record degrades to blank form", func(t *testing.T) {
		f := loadedFixture(t)

		view, err := newTestRecordService(f).NewForm(context.Background(), 404, now)

		require.NoError(t, err)
		assert.True(t, view.Editing)
		assert.Equal(t, "2025-06-06T09:41", view.Form.RecordTime)
		assert.Equal(t, int64(0), view.Form.OfficialFoodID)
	})
}

func TestRecordService_ListGrouped(t *testing.T) {
	f := loadedFixture(t)

	groups, err := newTestRecordService(f).ListGrouped(context.Background())
	require.NoError(t, err)

	require.Len(t, groups, 3)
	assert.Equal(t, "2025-06-06", groups[0].Date)
	assert.Equal(t, "週五", groups[0].Weekday)
	assert.Equal(t, "2025-06-05", groups[1].Date)
	assert.Equal(t, "週四", groups[1].Weekday)
	assert.Equal(t, "2025-06-04", groups[2].Date)
	assert.Equal(t, "週三", groups[2].Weekday)

	require.Len(t, groups[0].Records, 2)
	assert.Equal(t, int64(3), groups[0].Records[0].Record.ID)
	assert.Equal(t, "12:15", groups[0].Records[0].Time)
	assert.Equal(t, "my salad：120 kcal", groups[0].Records[0].Label)
	assert.Equal(t, int64(1), groups[0].Records[1].Record.ID)
}

func TestRecordService_ListGrouped_LoadFailure(t *testing.T) {
	f := newFixture(t, true)
	f.auth.EXPECT().WhoAmI(mock.Anything).Return(&entity.WhoAmI{LoggedIn: false}, nil).Once()

	_, err := newTestRecordService(f).ListGrouped(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}
