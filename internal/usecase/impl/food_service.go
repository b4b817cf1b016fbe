package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "dietlog/internal/delivery/context"
	"dietlog/internal/domain/entity"
	domainerrors "dietlog/internal/domain/errors"
	"dietlog/internal/domain/service"
	"dietlog/internal/usecase"

	"go.uber.org/fx"
)

// FoodParams holds dependencies for the food service, injected by Fx.
type FoodParams struct {
	fx.In

	Store       usecase.StoreUsecase
	CustomFoods service.CustomFoodService
	Gate        *SubmitGate
	Logger      *slog.Logger
}

// foodService implements the FoodUsecase interface.
type foodService struct {
	store       usecase.StoreUsecase
	customFoods service.CustomFoodService
	gate        *SubmitGate
	logger      *slog.Logger
}

// NewFoodService is the constructor for foodService.
func NewFoodService(params FoodParams) usecase.FoodUsecase {
	return &foodService{
		store:       params.Store,
		customFoods: params.CustomFoods,
		gate:        params.Gate,
		logger:      params.Logger,
	}
}

func (srv *foodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *foodService) List(ctx context.Context) ([]usecase.FoodRow, error) {
	if err := srv.store.FetchAllIfNeeded(ctx); err != nil {
		return nil, err
	}

	foods := srv.store.Snapshot().CustomFoods
	rows := make([]usecase.FoodRow, 0, len(foods))
	for _, food := range foods {
		rows = append(rows, usecase.FoodRow{Food: food, Label: foodLabel(food)})
	}

	return rows, nil
}

// foodLabel shows calories as entered, unrounded.
func foodLabel(food entity.CustomFood) string {
	return food.Name + "：" + strconv.FormatFloat(food.Calories, 'f', -1, 64) + " kcal"
}

func (srv *foodService) NewForm(ctx context.Context, editID int64) (*usecase.FoodFormView, error) {
	if err := srv.store.FetchAllIfNeeded(ctx); err != nil {
		return nil, err
	}

	view := &usecase.FoodFormView{Editing: editID != 0, EditID: editID}
	if editID == 0 {
		return view, nil
	}

	food, ok := srv.store.FindCustomFood(editID)
	if !ok {
		srv.log(ctx).Warn("Custom food to edit not found in store", slog.Int64("food_id", editID))

		return view, nil
	}

	view.Form = usecase.FoodForm{
		Name:     food.Name,
		Calories: &food.Calories,
		Protein:  &food.Protein,
		Fat:      &food.Fat,
		Carbs:    &food.Carbs,
	}

	return view, nil
}

func (srv *foodService) Submit(ctx context.Context, editID int64, form usecase.FoodForm) error {
	name := strings.TrimSpace(form.Name)
	if name == "" || form.Calories == nil || form.Protein == nil || form.Fat == nil || form.Carbs == nil {
		return domainerrors.ErrIncompleteFood
	}

	release, err := srv.gate.Acquire(foodFormKey(editID))
	if err != nil {
		return err
	}
	defer release()

	input := entity.CustomFoodInput{
		Name:     name,
		Calories: *form.Calories,
		Protein:  *form.Protein,
		Fat:      *form.Fat,
		Carbs:    *form.Carbs,
	}

	var saved *entity.CustomFood
	if editID == 0 {
		srv.log(ctx).Info("Creating custom food", slog.String("name", name))
		saved, err = srv.customFoods.CreateCustomFood(ctx, input)
	} else {
		srv.log(ctx).Info("Updating custom food", slog.Int64("food_id", editID))
		saved, err = srv.customFoods.UpdateCustomFood(ctx, editID, input)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to save custom food", slog.Any("error", err), slog.Int64("food_id", editID))

		if service.IsConflict(err) {
			return domainerrors.ErrFoodNameTaken
		}

		return domainerrors.ErrFoodSaveFailed.WithDetails(err.Error())
	}

	if saved != nil {
		srv.store.ApplyLocalUpsertCustomFood(*saved)

		return nil
	}
	srv.store.Invalidate()

	return nil
}

func foodFormKey(editID int64) string {
	if editID == 0 {
		return "food:new"
	}

	return "food:" + strconv.FormatInt(editID, 10)
}

func (srv *foodService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return domainerrors.ErrConfirmationRequired
	}

	if err := srv.customFoods.DeleteCustomFood(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete custom food", slog.Any("error", err), slog.Int64("food_id", id))

		return domainerrors.ErrDeleteFailed.WithDetails(err.Error())
	}

	return srv.store.ApplyLocalDelete(usecase.CollectionCustomFoods, id)
}
