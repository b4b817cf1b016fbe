package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/http/cookiejar"
	"testing"
	"time"

	"dietlog/config"
	deliverycontext "dietlog/internal/delivery/context"
	"dietlog/internal/domain/entity"
	"dietlog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionCookie = "session"

func newTestTransport(t *testing.T) *Transport {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return NewTransportWithClient(
		&http.Client{Jar: jar, Timeout: 5 * time.Second},
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func newTestConfig(authURL, foodURL, recordURL string) *config.Config {
	return &config.Config{
		Remote: &config.RemoteConfig{
			AuthBaseURL:   authURL,
			FoodBaseURL:   foodURL,
			RecordBaseURL: recordURL,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestAuthClient_LoginSetsCookieUsedByOtherServices(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			var creds entity.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "amy", creds.Username)
			http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "abc", Path: "/"})
			writeJSON(w, http.StatusOK, map[string]string{"message": service.LoginSucceededMessage})
		case "/whoami":
			writeJSON(w, http.StatusOK, map[string]any{"logged_in": true, "user_id": 7, "username": "amy"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer auth.Close()

	var seenCookie string
	records := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(sessionCookie); err == nil {
			seenCookie = c.Value
		}
		writeJSON(w, http.StatusOK, []map[string]any{})
	}))
	defer records.Close()

	transport := newTestTransport(t)
	cfg := newTestConfig(auth.URL, records.URL, records.URL)

	authSvc, err := NewAuthClient(transport, cfg)
	require.NoError(t, err)
	recordSvc, err := NewDietRecordClient(transport, cfg)
	require.NoError(t, err)

	ctx := context.Background()
	result, err := authSvc.Login(ctx, entity.Credentials{Username: "amy", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, service.LoginSucceededMessage, result.Message)

	who, err := authSvc.WhoAmI(ctx)
	require.NoError(t, err)
	assert.True(t, who.LoggedIn)
	assert.Equal(t, entity.UserID("7"), who.UserID)

	_, err = recordSvc.ListDietRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", seenCookie)
}

func TestAuthClient_Signup(t *testing.T) {
	status := http.StatusCreated
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signup", r.URL.Path)
		if status == http.StatusConflict {
			writeJSON(w, status, map[string]string{"error": "使用者名稱已存在"})

			return
		}
		w.WriteHeader(status)
	}))
	defer srv.Close()

	authSvc, err := NewAuthClient(newTestTransport(t), newTestConfig(srv.URL, srv.URL, srv.URL))
	require.NoError(t, err)

	require.NoError(t, authSvc.Signup(context.Background(), entity.Credentials{Username: "amy", Password: "pw"}))

	status = http.StatusConflict
	err = authSvc.Signup(context.Background(), entity.Credentials{Username: "amy", Password: "pw"})
	require.Error(t, err)
	assert.True(t, service.IsConflict(err))
	assert.Equal(t, "使用者名稱已存在", service.ServerMessage(err))

	status = http.StatusOK
	err = authSvc.Signup(context.Background(), entity.Credentials{Username: "amy", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, http.StatusOK, service.StatusCode(err))
}

func TestAuthClient_WhoAmIUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "未登入"})
	}))
	defer srv.Close()

	authSvc, err := NewAuthClient(newTestTransport(t), newTestConfig(srv.URL, srv.URL, srv.URL))
	require.NoError(t, err)

	_, err = authSvc.WhoAmI(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, service.StatusCode(err))
}

func TestAuthClient_LogoutForwardsRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/logout", r.URL.Path)
		assert.Equal(t, "req-7", r.Header.Get(deliverycontext.HeaderXRequestID))
		writeJSON(w, http.StatusOK, map[string]string{"message": "已登出"})
	}))
	defer srv.Close()

	authSvc, err := NewAuthClient(newTestTransport(t), newTestConfig(srv.URL, srv.URL, srv.URL))
	require.NoError(t, err)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")
	assert.NoError(t, authSvc.Logout(ctx))
}

func TestCustomFoodClient_ListSendsUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customer-foods", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("user_id"))
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 5, "user_id": 7, "name": "oat", "calories": 380, "protein": 13, "fat": 7, "carbs": 60},
		})
	}))
	defer srv.Close()

	foodSvc, err := NewCustomFoodClient(newTestTransport(t), newTestConfig(srv.URL, srv.URL, srv.URL))
	require.NoError(t, err)

	foods, err := foodSvc.ListCustomFoods(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "oat", foods[0].Name)
	assert.Equal(t, entity.UserID("7"), foods[0].OwnerUserID)
	assert.InDelta(t, 60.0, foods[0].Carbs, 0)
}

func TestCustomFoodClient_SaveAndDelete(t *testing.T) {
	var lastMethod, lastPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastMethod, lastPath = r.Method, r.URL.Path
		switch r.Method {
		case http.MethodPost:
			var input entity.CustomFoodInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			writeJSON(w, http.StatusCreated, map[string]any{"id": 11, "user_id": 7, "name": input.Name, "calories": input.Calories})
		case http.MethodPut:
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	foodSvc, err := NewCustomFoodClient(newTestTransport(t), newTestConfig(srv.URL, srv.URL, srv.URL))
	require.NoError(t, err)
	ctx := context.Background()

	created, err := foodSvc.CreateCustomFood(ctx, entity.CustomFoodInput{Name: "oat", Calories: 380})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(11), created.ID)

	updated, err := foodSvc.UpdateCustomFood(ctx, 11, entity.CustomFoodInput{Name: "oat", Calories: 390})
	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, http.MethodPut, lastMethod)
	assert.Equal(t, "/customer-foods/11", lastPath)

	require.NoError(t, foodSvc.DeleteCustomFood(ctx, 11))
	assert.Equal(t, http.MethodDelete, lastMethod)
	assert.Equal(t, "/customer-foods/11", lastPath)
}

func TestDietRecordClient_CreateSendsWirePayload(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/diet-records", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-1", r.Header.Get(deliverycontext.HeaderXRequestID))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	recordSvc, err := NewDietRecordClient(newTestTransport(t), newTestConfig(srv.URL, srv.URL, srv.URL))
	require.NoError(t, err)

	rt, err := entity.ParseFormTime("2025-06-06T08:30")
	require.NoError(t, err)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	err = recordSvc.CreateDietRecord(ctx, entity.DietRecordInput{
		RecordTime: rt,
		Quantity:   2,
		Sums:       entity.Macros{Calories: 500, Carbs: 60, Protein: 20, Fat: 16},
		Food:       entity.OfficialFoodRef(7),
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-06 08:30:00", body["record_time"])
	assert.EqualValues(t, 500, body["calorie_sum"])
	assert.EqualValues(t, 7, body["official_food_id"])
	assert.Nil(t, body["custom_food_id"])
	assert.Nil(t, body["manual_name"])
}

func TestDietRecordClient_ListDecodesRecordsAndCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/official-foods":
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 7, "name": "rice", "calories": 250, "carbs": 30, "protein": 10, "fat": 8}})
		case "/diet-records":
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "record_time": "2025-06-06 08:30:00", "qty": 2, "official_food_id": 7, "calorie_sum": 500}})
		}
	}))
	defer srv.Close()

	recordSvc, err := NewDietRecordClient(newTestTransport(t), newTestConfig(srv.URL, srv.URL, srv.URL))
	require.NoError(t, err)
	ctx := context.Background()

	foods, err := recordSvc.ListOfficialFoods(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "rice", foods[0].Name)

	records, err := recordSvc.ListDietRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 2.0, records[0].Quantity, 0)
}

func TestDietRecordClient_DeleteFailureCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "沒有權限"})
	}))
	defer srv.Close()

	recordSvc, err := NewDietRecordClient(newTestTransport(t), newTestConfig(srv.URL, srv.URL, srv.URL))
	require.NoError(t, err)

	err = recordSvc.DeleteDietRecord(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, service.StatusCode(err))
	assert.Equal(t, "沒有權限", service.ServerMessage(err))
}

func TestTransport_RejectsRelativeBaseURL(t *testing.T) {
	_, err := NewAuthClient(newTestTransport(t), newTestConfig("/auth", "http://x", "http://x"))
	assert.Error(t, err)
}

func TestNewTransport_FromConfig(t *testing.T) {
	cfg := newTestConfig("http://a", "http://b", "http://c")
	cfg.Remote.Timeout = time.Second
	cfg.Remote.RateLimit = config.RateLimitConfig{RPS: 5, Burst: 2}

	transport, err := NewTransport(TransportParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.NotNil(t, transport.httpClient.Jar)
	assert.Equal(t, time.Second, transport.httpClient.Timeout)
	assert.Equal(t, 2, transport.limiter.Burst())
}
