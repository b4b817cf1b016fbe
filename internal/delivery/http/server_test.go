package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dietlog/config"
	deliverycontext "dietlog/internal/delivery/context"
	httpmiddleware "dietlog/internal/delivery/http/middleware"
	"dietlog/internal/delivery/http/router"
	"dietlog/internal/delivery/http/router/handler"
	domainerrors "dietlog/internal/domain/errors"
	mockUsecase "dietlog/internal/mocks/usecase"
	"dietlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e         *echo.Echo
	guard     *mockUsecase.MockGuardUsecase
	session   *mockUsecase.MockSessionUsecase
	dashboard *mockUsecase.MockDashboardUsecase
	records   *mockUsecase.MockRecordUsecase
	foods     *mockUsecase.MockFoodUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		e:         NewEcho(cfg, logger),
		guard:     mockUsecase.NewMockGuardUsecase(t),
		session:   mockUsecase.NewMockSessionUsecase(t),
		dashboard: mockUsecase.NewMockDashboardUsecase(t),
		records:   mockUsecase.NewMockRecordUsecase(t),
		foods:     mockUsecase.NewMockFoodUsecase(t),
	}

	router.NewRouter(router.RouterParams{
		AuthHandler:      handler.NewAuthHandler(ts.session, logger),
		DashboardHandler: handler.NewDashboardHandler(ts.dashboard),
		RecordHandler:    handler.NewRecordHandler(ts.records),
		FoodHandler:      handler.NewFoodHandler(ts.foods),
		GuardMiddleware:  httpmiddleware.NewGuardMiddleware(ts.guard),
	}).RegisterRoutes(ts.e)

	return ts
}

func (ts *testServer) allow(path string) {
	ts.guard.EXPECT().Check(mock.Anything, path).
		Return(usecase.Decision{Allow: true, State: usecase.GuardStateAuthenticated})
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
	RequestID string `json:"request_id"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestGuard_RedirectsToLogin(t *testing.T) {
	ts := newTestServer(t)
	ts.guard.EXPECT().Check(mock.Anything, "/records").
		Return(usecase.Decision{Redirect: usecase.RouteLogin, State: usecase.GuardStateDenied})

	rec := ts.do(http.MethodGet, "/records", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?redirect=%2Frecords", rec.Header().Get(echo.HeaderLocation))
}

func TestGuard_DashboardRedirectHasNoReturnPath(t *testing.T) {
	ts := newTestServer(t)
	ts.guard.EXPECT().Check(mock.Anything, "/").
		Return(usecase.Decision{Redirect: usecase.RouteLogin, State: usecase.GuardStateDenied})

	rec := ts.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestLoginPage_ShowsFlashMessage(t *testing.T) {
	ts := newTestServer(t)
	ts.guard.EXPECT().Check(mock.Anything, "/login").Return(usecase.Decision{Allow: true, State: usecase.GuardStatePublic})
	ts.session.EXPECT().IsAuthenticated().Return(false)

	rec := ts.do(http.MethodGet, "/login?msg=%E5%B7%B2%E8%A8%BB%E5%86%8A", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var screen handler.LoginScreen
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &screen))
	assert.Equal(t, "已註冊", screen.Message)
}

func TestLogin_Success(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/login")
	ts.session.EXPECT().Login(mock.Anything, usecase.LoginInput{Username: "amy", Password: "pw"}).
		Return(&usecase.LoginOutput{UserID: "9", Username: "amy"}, nil)

	rec := ts.do(http.MethodPost, "/login?redirect=/foods", `{"username":"amy","password":"pw"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "登入成功", env.Message)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "/foods", data["redirect"])
	assert.Equal(t, "amy", data["username"])
}

func TestLogin_OffsiteRedirectIgnored(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/login")
	ts.session.EXPECT().Login(mock.Anything, mock.Anything).Return(&usecase.LoginOutput{UserID: "9", Username: "amy"}, nil)

	for _, target := range []string{"//evil.example", "/%5Cevil.example", "https://evil.example"} {
		rec := ts.do(http.MethodPost, "/login?redirect="+target, `{"username":"amy","password":"pw"}`)

		var data map[string]any
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
		assert.Equal(t, "/", data["redirect"], target)
	}
}

func TestLogin_FailureEnvelope(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/login")
	ts.session.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrLoginFailed)

	rec := ts.do(http.MethodPost, "/login", `{"username":"amy","password":"bad"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "登入失敗", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, "LOGIN_FAILED", env.Error.Code)
}

func TestSignup_RedirectsToLoginWithMessage(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/signup")
	ts.session.EXPECT().Signup(mock.Anything, usecase.SignupInput{Username: "amy", Password: "pw"}).
		Return(&usecase.SignupOutput{Message: usecase.SignupSucceededMessage}, nil)

	rec := ts.do(http.MethodPost, "/signup", `{"username":"amy","password":"pw"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var nav struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &nav))
	assert.True(t, strings.HasPrefix(nav.Redirect, "/login?msg="))
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/logout")
	ts.session.EXPECT().Logout(mock.Anything).Return()

	rec := ts.do(http.MethodPost, "/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/")
	ts.dashboard.EXPECT().Today(mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&usecase.DashboardView{Date: "2025-06-06", TargetKcal: usecase.DailyCalorieTarget, RingColor: "#4caf50"}, nil)

	rec := ts.do(http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var view usecase.DashboardView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "2025-06-06", view.Date)
}

func TestDashboard_SessionInvalid(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/")
	ts.dashboard.EXPECT().Today(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrSessionInvalid)

	rec := ts.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecords_CreateValidatesBeforeSubmitting(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/records")

	rec := ts.do(http.MethodPost, "/records", `{"mode":"sushi","record_time":"2025-06-06T08:30"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "mode")
}

func TestRecords_Create(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/records")
	ts.records.EXPECT().Submit(mock.Anything, int64(0), mock.MatchedBy(func(form usecase.RecordForm) bool {
		return form.Mode == usecase.FoodModeOfficial && form.OfficialFoodID == 7 && form.Quantity == 2
	})).Return(nil)

	rec := ts.do(http.MethodPost, "/records", `{"mode":"official","official_food_id":7,"record_time":"2025-06-06T08:30","quantity":2}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/"`)
}

func TestRecords_UpdateRejectsBadID(t *testing.T) {
	ts := newTestServer(t)
	ts.guard.EXPECT().Check(mock.Anything, "/records/abc").Return(usecase.Decision{Allow: true, State: usecase.GuardStateAuthenticated})

	rec := ts.do(http.MethodPut, "/records/abc", `{"mode":"manual"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecords_ServerFailureHidesDetails(t *testing.T) {
	ts := newTestServer(t)
	ts.guard.EXPECT().Check(mock.Anything, "/records/3").Return(usecase.Decision{Allow: true, State: usecase.GuardStateAuthenticated})
	ts.records.EXPECT().Submit(mock.Anything, int64(3), mock.Anything).
		Return(domainerrors.ErrUpdateRecordFailed.WithDetails("dial tcp 127.0.0.1:1133"))

	rec := ts.do(http.MethodPut, "/records/3", `{"mode":"custom","custom_food_id":5,"record_time":"2025-06-06T08:30"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "更新失敗，請檢查欄位或網路。", env.Message)
	assert.Empty(t, env.Error.Details)
}

func TestRecords_DeleteNeedsConfirmation(t *testing.T) {
	ts := newTestServer(t)
	ts.guard.EXPECT().Check(mock.Anything, "/records/3").Return(usecase.Decision{Allow: true, State: usecase.GuardStateAuthenticated})
	ts.records.EXPECT().Delete(mock.Anything, int64(3), false).Return(domainerrors.ErrConfirmationRequired)

	rec := ts.do(http.MethodDelete, "/records/3", "")

	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
}

func TestRecords_DeleteConfirmed(t *testing.T) {
	ts := newTestServer(t)
	ts.guard.EXPECT().Check(mock.Anything, "/records/3").Return(usecase.Decision{Allow: true, State: usecase.GuardStateAuthenticated})
	ts.records.EXPECT().Delete(mock.Anything, int64(3), true).Return(nil)

	rec := ts.do(http.MethodDelete, "/records/3?confirm=true", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecords_ListGrouped(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/records")
	ts.records.EXPECT().ListGrouped(mock.Anything).
		Return([]usecase.RecordGroup{{Date: "2025-06-06", Weekday: "週五"}}, nil)

	rec := ts.do(http.MethodGet, "/records", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "週五")
}

func TestRecords_FormForEdit(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/records/form")
	ts.records.EXPECT().NewForm(mock.Anything, int64(4), mock.Anything).
		Return(&usecase.RecordFormView{Editing: true, EditID: 4}, nil)

	rec := ts.do(http.MethodGet, "/records/form?id=4", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFoods_DuplicateName(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/foods")
	ts.foods.EXPECT().Submit(mock.Anything, int64(0), mock.Anything).Return(domainerrors.ErrFoodNameTaken)

	rec := ts.do(http.MethodPost, "/foods", `{"name":"salad","calories":1,"protein":1,"fat":1,"carbs":1}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "食物名稱重複，請換一個。", decode(t, rec).Message)
}

func TestFoods_CreateBindsNullableNumbers(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/foods")
	ts.foods.EXPECT().Submit(mock.Anything, int64(0), mock.MatchedBy(func(form usecase.FoodForm) bool {
		return form.Calories != nil && *form.Calories == 0 && form.Fat == nil
	})).Return(domainerrors.ErrIncompleteFood)

	rec := ts.do(http.MethodPost, "/foods", `{"name":"salad","calories":0,"protein":1,"carbs":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "請確保所有欄位都已填寫。", decode(t, rec).Message)
}

func TestFoods_ListAndForm(t *testing.T) {
	ts := newTestServer(t)
	ts.allow("/foods")
	ts.allow("/foods/form")
	ts.foods.EXPECT().List(mock.Anything).Return([]usecase.FoodRow{{Label: "salad：120 kcal"}}, nil)
	ts.foods.EXPECT().NewForm(mock.Anything, int64(5)).Return(&usecase.FoodFormView{Editing: true, EditID: 5}, nil)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/foods", "").Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/foods/form?id=5", "").Code)
}

func TestFoods_DeleteConfirmed(t *testing.T) {
	ts := newTestServer(t)
	ts.guard.EXPECT().Check(mock.Anything, "/foods/5").Return(usecase.Decision{Allow: true, State: usecase.GuardStateAuthenticated})
	ts.foods.EXPECT().Delete(mock.Anything, int64(5), true).Return(nil)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodDelete, "/foods/5?confirm=1", "").Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := newTestServer(t)
	ts.guard.EXPECT().Check(mock.Anything, "/health").Return(usecase.Decision{Allow: true, State: usecase.GuardStatePublic})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", decode(t, rec).RequestID)
}
