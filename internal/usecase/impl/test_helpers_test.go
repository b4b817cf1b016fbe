package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dietlog/internal/domain/entity"
	"dietlog/internal/domain/repository"
	badgerrepo "dietlog/internal/infra/persistence/badger"
	mockSvc "dietlog/internal/mocks/service"
	"dietlog/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = entity.UserID("9")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newIdentityRepo(t *testing.T) repository.IdentityRepository {
	t.Helper()

	repo, err := badgerrepo.Open("", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func mustWireTime(t *testing.T, s string) entity.RecordTime {
	t.Helper()

	rt, err := entity.ParseWireTime(s)
	require.NoError(t, err)

	return rt
}

// fixture wires the real session and store over mocked remote services.
type fixture struct {
	auth        *mockSvc.MockAuthService
	records     *mockSvc.MockDietRecordService
	customFoods *mockSvc.MockCustomFoodService
	identity    repository.IdentityRepository
	session     usecase.SessionUsecase
	store       usecase.StoreUsecase
	gate        *SubmitGate
	logger      *slog.Logger
}

func newFixture(t *testing.T, loggedIn bool) *fixture {
	t.Helper()

	f := &fixture{
		auth:        mockSvc.NewMockAuthService(t),
		records:     mockSvc.NewMockDietRecordService(t),
		customFoods: mockSvc.NewMockCustomFoodService(t),
		identity:    newIdentityRepo(t),
		gate:        NewSubmitGate(),
		logger:      newDiscardLogger(),
	}

	if loggedIn {
		require.NoError(t, f.identity.Save(context.Background(), entity.Identity{UserID: testUserID, Username: "amy"}))
	}

	f.session = NewSessionState(SessionParams{IdentityRepo: f.identity, Auth: f.auth, Logger: f.logger})
	f.store = NewStore(StoreParams{Session: f.session, Records: f.records, CustomFoods: f.customFoods, Logger: f.logger})

	return f
}

type catalog struct {
	officialFoods []entity.OfficialFood
	customFoods   []entity.CustomFood
	records       []entity.DietRecord
}

func testCatalog(t *testing.T) catalog {
	t.Helper()

	return catalog{
		officialFoods: []entity.OfficialFood{
			{ID: 7, Name: "便當", Calories: 250, Carbs: 30, Protein: 10, Fat: 8},
		},
		customFoods: []entity.CustomFood{
			{ID: 5, OwnerUserID: testUserID, Name: "my salad", Calories: 120, Carbs: 10, Protein: 5, Fat: 6},
		},
		// deliberately unsorted
		records: []entity.DietRecord{
			{ID: 2, Food: entity.CustomFoodRef(5), RecordTime: mustWireTime(t, "2025-06-05 12:00:00"), Quantity: 1, CalorieSum: 120, CarbSum: 10, ProteinSum: 5, FatSum: 6},
			{ID: 1, Food: entity.OfficialFoodRef(7), RecordTime: mustWireTime(t, "2025-06-06 08:30:00"), Quantity: 2, CalorieSum: 500, CarbSum: 60, ProteinSum: 20, FatSum: 16},
			{ID: 3, Food: entity.CustomFoodRef(5), RecordTime: mustWireTime(t, "2025-06-06 12:15:00"), Quantity: 1, CalorieSum: 120, CarbSum: 10, ProteinSum: 5, FatSum: 6},
			{ID: 4, Food: entity.ManualFoodRef("apple"), RecordTime: mustWireTime(t, "2025-06-04 18:00:00"), Quantity: 1, CalorieSum: 52.4, CarbSum: 14, ProteinSum: 0.3, FatSum: 0.2},
		},
	}
}

// expectLoad registers exactly one successful reconcile and fetch-all.
func (f *fixture) expectLoad(c catalog) {
	f.auth.EXPECT().WhoAmI(mock.Anything).
		Return(&entity.WhoAmI{LoggedIn: true, UserID: testUserID, Username: "amy"}, nil).Once()
	f.records.EXPECT().ListOfficialFoods(mock.Anything).Return(c.officialFoods, nil).Once()
	f.customFoods.EXPECT().ListCustomFoods(mock.Anything, testUserID).Return(c.customFoods, nil).Once()
	f.records.EXPECT().ListDietRecords(mock.Anything).Return(c.records, nil).Once()
}

// loadedFixture returns a fixture whose store already holds the test catalog.
func loadedFixture(t *testing.T) *fixture {
	t.Helper()

	f := newFixture(t, true)
	f.expectLoad(testCatalog(t))
	require.NoError(t, f.store.FetchAllIfNeeded(context.Background()))

	return f
}

func floatPtr(v float64) *float64 {
	return &v
}
