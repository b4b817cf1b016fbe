package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"sync"

	deliverycontext "dietlog/internal/delivery/context"
	"dietlog/internal/domain/entity"
	domainerrors "dietlog/internal/domain/errors"
	"dietlog/internal/domain/service"
	"dietlog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const fetchAllKey = "fetch-all"

// StoreParams holds dependencies for the store, injected by Fx.
type StoreParams struct {
	fx.In

	Session     usecase.SessionUsecase
	Records     service.DietRecordService
	CustomFoods service.CustomFoodService
	Logger      *slog.Logger
}

// store implements the StoreUsecase interface.
type store struct {
	session     usecase.SessionUsecase
	records     service.DietRecordService
	customFoods service.CustomFoodService
	logger      *slog.Logger

	loads singleflight.Group

	mu    sync.RWMutex
	state usecase.Snapshot
	// generation is bumped by Reset so a load that started before a logout
	// never commits afterwards.
	generation uint64

	observersMu  sync.Mutex
	observers    map[int]func(usecase.Snapshot)
	nextObserver int
}

// NewStore is the constructor for store. It resets itself whenever the session is cleared.
func NewStore(params StoreParams) usecase.StoreUsecase {
	s := &store{
		session:     params.Session,
		records:     params.Records,
		customFoods: params.CustomFoods,
		logger:      params.Logger,
		observers:   make(map[int]func(usecase.Snapshot)),
	}
	params.Session.OnClear(func(context.Context) { s.Reset() })

	return s
}

func (s *store) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *store) FetchAllIfNeeded(ctx context.Context) error {
	if !s.session.IsAuthenticated() || s.Loaded() {
		return nil
	}

	// The shared load outlives any single caller; a caller that gives up only
	// stops waiting.
	loadCtx := context.WithoutCancel(ctx)
	result := s.loads.DoChan(fetchAllKey, func() (any, error) {
		return nil, s.load(loadCtx)
	})

	select {
	case res := <-result:
		return res.Err
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (s *store) load(ctx context.Context) error {
	if s.Loaded() {
		return nil
	}

	if !s.session.Reconcile(ctx) {
		return domainerrors.ErrSessionInvalid
	}

	// Read after reconciling: a switch to another user resets the store from
	// inside Reconcile, and this load already fetches for the new identity.
	s.mu.RLock()
	generation := s.generation
	s.mu.RUnlock()
	userID := s.session.Current().UserID

	s.log(ctx).Debug("Loading shared data", slog.String("user_id", string(userID)))

	var (
		officialFoods []entity.OfficialFood
		customFoods   []entity.CustomFood
		records       []entity.DietRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		officialFoods, err = s.records.ListOfficialFoods(gctx)

		return errors.Wrap(err, "list official foods")
	})
	g.Go(func() error {
		var err error
		customFoods, err = s.customFoods.ListCustomFoods(gctx, userID)

		return errors.Wrap(err, "list custom foods")
	})
	g.Go(func() error {
		var err error
		records, err = s.records.ListDietRecords(gctx)

		return errors.Wrap(err, "list diet records")
	})

	if err := g.Wait(); err != nil {
		s.log(ctx).Error("Failed to load shared data, clearing session", slog.Any("error", err))
		s.session.Clear(ctx)

		return domainerrors.ErrSessionInvalid.WithDetails(err.Error())
	}

	sortRecordsDesc(records)

	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()
		s.log(ctx).Info("Session changed during load, discarding result")

		return domainerrors.ErrSessionInvalid
	}
	s.state = usecase.Snapshot{
		OfficialFoods: nonNil(officialFoods),
		CustomFoods:   nonNil(customFoods),
		Records:       nonNil(records),
		Loaded:        true,
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.log(ctx).Info("Shared data loaded",
		slog.Int("official_foods", len(snapshot.OfficialFoods)),
		slog.Int("custom_foods", len(snapshot.CustomFoods)),
		slog.Int("records", len(snapshot.Records)),
	)
	s.notify(snapshot)

	return nil
}

func (s *store) Invalidate() {
	s.mu.Lock()
	s.state.Loaded = false
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

func (s *store) Reset() {
	s.mu.Lock()
	s.state = usecase.Snapshot{
		OfficialFoods: []entity.OfficialFood{},
		CustomFoods:   []entity.CustomFood{},
		Records:       []entity.DietRecord{},
	}
	s.generation++
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

func (s *store) ApplyLocalDelete(kind usecase.Collection, id int64) error {
	s.mu.Lock()
	switch kind {
	case usecase.CollectionRecords:
		s.state.Records = slices.DeleteFunc(s.state.Records, func(r entity.DietRecord) bool { return r.ID == id })
	case usecase.CollectionCustomFoods:
		s.state.CustomFoods = slices.DeleteFunc(s.state.CustomFoods, func(f entity.CustomFood) bool { return f.ID == id })
	case usecase.CollectionOfficialFoods:
		s.mu.Unlock()

		return domainerrors.ErrReadOnlyCollection
	default:
		s.mu.Unlock()

		return errors.Errorf("unknown collection %q", kind)
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)

	return nil
}

func (s *store) ApplyLocalUpsertRecord(record entity.DietRecord) {
	s.mu.Lock()
	if i := slices.IndexFunc(s.state.Records, func(r entity.DietRecord) bool { return r.ID == record.ID }); i >= 0 {
		s.state.Records[i] = record
	} else {
		s.state.Records = append(s.state.Records, record)
	}
	sortRecordsDesc(s.state.Records)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

func (s *store) ApplyLocalUpsertCustomFood(food entity.CustomFood) {
	s.mu.Lock()
	if i := slices.IndexFunc(s.state.CustomFoods, func(f entity.CustomFood) bool { return f.ID == food.ID }); i >= 0 {
		s.state.CustomFoods[i] = food
	} else {
		s.state.CustomFoods = append(s.state.CustomFoods, food)
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

func (s *store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Loaded
}

func (s *store) Snapshot() usecase.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *store) snapshotLocked() usecase.Snapshot {
	return usecase.Snapshot{
		OfficialFoods: nonNil(slices.Clone(s.state.OfficialFoods)),
		CustomFoods:   nonNil(slices.Clone(s.state.CustomFoods)),
		Records:       nonNil(slices.Clone(s.state.Records)),
		Loaded:        s.state.Loaded,
	}
}

func (s *store) FindRecord(id int64) (entity.DietRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return find(s.state.Records, func(r entity.DietRecord) bool { return r.ID == id })
}

func (s *store) FindCustomFood(id int64) (entity.CustomFood, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return find(s.state.CustomFoods, func(f entity.CustomFood) bool { return f.ID == id })
}

func (s *store) FindOfficialFood(id int64) (entity.OfficialFood, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return find(s.state.OfficialFoods, func(f entity.OfficialFood) bool { return f.ID == id })
}

func (s *store) FoodName(record entity.DietRecord) string {
	name := ""
	switch record.Food.Kind() {
	case entity.FoodRefOfficial:
		id, _ := record.Food.OfficialFoodID()
		if food, ok := s.FindOfficialFood(id); ok {
			name = food.Name
		}
	case entity.FoodRefCustom:
		id, _ := record.Food.CustomFoodID()
		if food, ok := s.FindCustomFood(id); ok {
			name = food.Name
		}
	case entity.FoodRefManual:
		name, _ = record.Food.ManualName()
	}

	if name == "" {
		return usecase.UnknownFoodName
	}

	return name
}

func (s *store) RecordLabel(record entity.DietRecord) string {
	return s.FoodName(record) + "：" + strconv.FormatFloat(math.Round(record.CalorieSum), 'f', 0, 64) + " kcal"
}

func (s *store) Subscribe(observer func(usecase.Snapshot)) func() {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()

	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = observer

	return func() {
		s.observersMu.Lock()
		defer s.observersMu.Unlock()

		delete(s.observers, id)
	}
}

// notify runs outside s.mu so observers may read the store.
func (s *store) notify(snapshot usecase.Snapshot) {
	s.observersMu.Lock()
	observers := make([]func(usecase.Snapshot), 0, len(s.observers))
	for _, observer := range s.observers {
		observers = append(observers, observer)
	}
	s.observersMu.Unlock()

	for _, observer := range observers {
		observer(snapshot)
	}
}

// sortRecordsDesc orders newest first; ties keep their relative order.
func sortRecordsDesc(records []entity.DietRecord) {
	slices.SortStableFunc(records, func(a, b entity.DietRecord) int {
		return b.RecordTime.Compare(a.RecordTime.Time)
	})
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	if i := slices.IndexFunc(items, match); i >= 0 {
		return items[i], true
	}

	var zero T

	return zero, false
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
