package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "dietlog/internal/delivery/context"
	"dietlog/internal/domain/entity"
	domainerrors "dietlog/internal/domain/errors"
	"dietlog/internal/domain/service"
	"dietlog/internal/usecase"

	"go.uber.org/fx"
)

var weekdayLabels = [...]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}

// RecordParams holds dependencies for the record service, injected by Fx.
type RecordParams struct {
	fx.In

	Store   usecase.StoreUsecase
	Records service.DietRecordService
	Gate    *SubmitGate
	Logger  *slog.Logger
}

// recordService implements the RecordUsecase interface.
type recordService struct {
	store   usecase.StoreUsecase
	records service.DietRecordService
	gate    *SubmitGate
	logger  *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(params RecordParams) usecase.RecordUsecase {
	return &recordService{
		store:   params.Store,
		records: params.Records,
		gate:    params.Gate,
		logger:  params.Logger,
	}
}

func (srv *recordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *recordService) NewForm(ctx context.Context, editID int64, now time.Time) (*usecase.RecordFormView, error) {
	if err := srv.store.FetchAllIfNeeded(ctx); err != nil {
		return nil, err
	}

	snapshot := srv.store.Snapshot()
	view := &usecase.RecordFormView{
		Editing:       editID != 0,
		EditID:        editID,
		OfficialFoods: snapshot.OfficialFoods,
		CustomFoods:   snapshot.CustomFoods,
		Form: usecase.RecordForm{
			Mode:       usecase.FoodModeOfficial,
			RecordTime: entity.NewRecordTime(now).Form(),
			Quantity:   entity.DefaultQuantity,
		},
	}
	if editID == 0 {
		return view, nil
	}

	record, ok := srv.store.FindRecord(editID)
	if !ok {
		// A stale link degrades to a blank form instead of failing the screen.
		srv.log(ctx).Warn("Record to edit not found in store", slog.Int64("record_id", editID))

		return view, nil
	}

	view.Form = formFromRecord(record)

	return view, nil
}

// formFromRecord divides the stored sums back into per-unit figures.
func formFromRecord(record entity.DietRecord) usecase.RecordForm {
	quantity := record.Quantity
	if quantity <= 0 {
		quantity = entity.DefaultQuantity
	}
	perUnit := record.Sums().Scale(1 / quantity)

	form := usecase.RecordForm{
		RecordTime: record.RecordTime.Form(),
		Quantity:   quantity,
		Calories:   &perUnit.Calories,
		Carbs:      &perUnit.Carbs,
		Protein:    &perUnit.Protein,
		Fat:        &perUnit.Fat,
	}

	switch record.Food.Kind() {
	case entity.FoodRefOfficial:
		form.Mode = usecase.FoodModeOfficial
		form.OfficialFoodID, _ = record.Food.OfficialFoodID()
	case entity.FoodRefCustom:
		form.Mode = usecase.FoodModeCustom
		form.CustomFoodID, _ = record.Food.CustomFoodID()
	default:
		form.Mode = usecase.FoodModeManual
		form.ManualName, _ = record.Food.ManualName()
	}

	return form
}

func (srv *recordService) BuildPayload(form usecase.RecordForm) (*entity.DietRecordInput, error) {
	if strings.TrimSpace(form.RecordTime) == "" {
		return nil, domainerrors.ErrRecordTimeRequired
	}
	recordTime, err := entity.ParseFormTime(form.RecordTime)
	if err != nil {
		return nil, domainerrors.ErrRecordTimeRequired.WithDetails(err.Error())
	}

	quantity := form.Quantity
	if quantity == 0 {
		quantity = entity.DefaultQuantity
	}
	if quantity < 0 {
		return nil, domainerrors.ErrIncompleteRecord
	}

	var (
		ref     entity.FoodRef
		perUnit entity.Macros
	)

	switch form.Mode {
	case usecase.FoodModeOfficial:
		food, ok := srv.store.FindOfficialFood(form.OfficialFoodID)
		if form.OfficialFoodID <= 0 || !ok {
			return nil, domainerrors.ErrIncompleteRecord
		}
		ref, perUnit = entity.OfficialFoodRef(food.ID), food.Macros()
	case usecase.FoodModeCustom:
		food, ok := srv.store.FindCustomFood(form.CustomFoodID)
		if form.CustomFoodID <= 0 || !ok {
			return nil, domainerrors.ErrIncompleteRecord
		}
		ref, perUnit = entity.CustomFoodRef(food.ID), food.Macros()
	case usecase.FoodModeManual:
		name := strings.TrimSpace(form.ManualName)
		if name == "" || form.Calories == nil || form.Carbs == nil || form.Protein == nil || form.Fat == nil {
			return nil, domainerrors.ErrIncompleteRecord
		}
		ref = entity.ManualFoodRef(name)
		perUnit = entity.Macros{Calories: *form.Calories, Carbs: *form.Carbs, Protein: *form.Protein, Fat: *form.Fat}
	default:
		return nil, domainerrors.ErrIncompleteRecord
	}

	return &entity.DietRecordInput{
		RecordTime: recordTime,
		Quantity:   quantity,
		Sums:       perUnit.Scale(quantity),
		Food:       ref,
	}, nil
}

func (srv *recordService) Submit(ctx context.Context, editID int64, form usecase.RecordForm) error {
	release, err := srv.gate.Acquire(recordFormKey(editID))
	if err != nil {
		return err
	}
	defer release()

	payload, err := srv.BuildPayload(form)
	if err != nil {
		return err
	}

	if editID == 0 {
		srv.log(ctx).Info("Creating diet record", slog.String("food_kind", string(payload.Food.Kind())))

		if err := srv.records.CreateDietRecord(ctx, *payload); err != nil {
			srv.log(ctx).Error("Failed to create diet record", slog.Any("error", err))

			return domainerrors.ErrCreateRecordFailed.WithDetails(err.Error())
		}
	} else {
		srv.log(ctx).Info("Updating diet record", slog.Int64("record_id", editID))

		if err := srv.records.UpdateDietRecord(ctx, editID, *payload); err != nil {
			srv.log(ctx).Error("Failed to update diet record", slog.Any("error", err), slog.Int64("record_id", editID))

			return domainerrors.ErrUpdateRecordFailed.WithDetails(err.Error())
		}
	}

	// The services do not echo the stored record; reload on next entry.
	srv.store.Invalidate()

	return nil
}

func recordFormKey(editID int64) string {
	if editID == 0 {
		return "record:new"
	}

	return "record:" + strconv.FormatInt(editID, 10)
}

func (srv *recordService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domainerrors.ErrConfirmationRequired
	}

	if err := srv.records.DeleteDietRecord(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete diet record", slog.Any("error", err), slog.Int64("record_id", id))

		return domainerrors.ErrDeleteFailed.WithDetails(err.Error())
	}

	return srv.store.ApplyLocalDelete(usecase.CollectionRecords, id)
}

func (srv *recordService) ListGrouped(ctx context.Context) ([]usecase.RecordGroup, error) {
	if err := srv.store.FetchAllIfNeeded(ctx); err != nil {
		return nil, err
	}

	// Newest first, so groups come out by date descending.
	records := srv.store.Snapshot().Records
	sortRecordsDesc(records)

	groups := []usecase.RecordGroup{}
	index := map[string]int{}
	for _, record := range records {
		date := record.RecordTime.Date()
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, usecase.RecordGroup{
				Date:    date,
				Weekday: weekdayLabels[record.RecordTime.Weekday()],
			})
		}
		groups[i].Records = append(groups[i].Records, srv.row(record))
	}

	return groups, nil
}

func (srv *recordService) row(record entity.DietRecord) usecase.RecordRow {
	return usecase.RecordRow{
		Record: record,
		Label:  srv.store.RecordLabel(record),
		Time:   record.RecordTime.Clock(),
	}
}
