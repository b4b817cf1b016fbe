package impl

import (
	"context"
	"testing"

	"dietlog/internal/domain/entity"
	"dietlog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestGuard(f *fixture) usecase.GuardUsecase {
	return NewGuard(GuardParams{Session: f.session, Store: f.store, Logger: f.logger})
}

func TestGuard_IsPublic(t *testing.T) {
	g := newTestGuard(newFixture(t, false))

	assert.True(t, g.IsPublic("/login"))
	assert.True(t, g.IsPublic("/signup/"))
	assert.True(t, g.IsPublic("/health"))
	assert.False(t, g.IsPublic("/"))
	assert.False(t, g.IsPublic("/records"))
	assert.False(t, g.IsPublic("/login/extra"))
}

func TestGuard_PublicRouteNeverTouchesNetwork(t *testing.T) {
	f := newFixture(t, false)

	decision := newTestGuard(f).Check(context.Background(), usecase.RouteLogin)

	assert.Equal(t, usecase.Decision{Allow: true, State: usecase.GuardStatePublic}, decision)
}

func TestGuard_NoMarkerRedirectsToLogin(t *testing.T) {
	f := newFixture(t, false)

	decision := newTestGuard(f).Check(context.Background(), usecase.RouteDashboard)

	assert.False(t, decision.Allow)
	assert.Equal(t, usecase.RouteLogin, decision.Redirect)
	assert.Equal(t, usecase.GuardStateDenied, decision.State)
}

func TestGuard_MarkerPresentLoadsThenAllows(t *testing.T) {
	f := newFixture(t, true)
	f.expectLoad(testCatalog(t))
	g := newTestGuard(f)

	first := g.Check(context.Background(), usecase.RouteRecords)
	second := g.Check(context.Background(), usecase.RouteCustomFoods)

	assert.Equal(t, usecase.Decision{Allow: true, State: usecase.GuardStateAuthenticated}, first)
	assert.Equal(t, first, second)
	assert.True(t, f.store.Loaded())
}

func TestGuard_FailsClosed(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name: "server says logged out",
			setup: func(f *fixture) {
				f.auth.EXPECT().WhoAmI(mock.Anything).Return(&entity.WhoAmI{LoggedIn: false}, nil).Once()
			},
		},
		{
			name: "identity check errors",
			setup: func(f *fixture) {
				f.auth.EXPECT().WhoAmI(mock.Anything).Return(nil, errors.New("dial tcp: refused")).Once()
			},
		},
		{
			name: "a collection fails to load",
			setup: func(f *fixture) {
				f.auth.EXPECT().WhoAmI(mock.Anything).
					Return(&entity.WhoAmI{LoggedIn: true, UserID: testUserID, Username: "amy"}, nil).Once()
				f.records.EXPECT().ListOfficialFoods(mock.Anything).Return([]entity.OfficialFood{}, nil).Once()
				f.customFoods.EXPECT().ListCustomFoods(mock.Anything, testUserID).Return(nil, errors.New("401")).Once()
				f.records.EXPECT().ListDietRecords(mock.Anything).Return([]entity.DietRecord{}, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, true)
			tt.setup(f)
			ctx := context.Background()

			decision := newTestGuard(f).Check(ctx, usecase.RouteDashboard)

			assert.False(t, decision.Allow)
			assert.Equal(t, usecase.RouteLogin, decision.Redirect)
			assert.Equal(t, usecase.GuardStateDenied, decision.State)
			assert.False(t, f.session.HasPersistedIdentity(ctx))
			assert.False(t, f.store.Loaded())
		})
	}
}

func TestGuard_InvalidatedStoreReloads(t *testing.T) {
	f := loadedFixture(t)
	f.store.Invalidate()
	f.expectLoad(testCatalog(t))

	decision := newTestGuard(f).Check(context.Background(), usecase.RouteDashboard)

	assert.True(t, decision.Allow)
	assert.True(t, f.store.Loaded())
}
