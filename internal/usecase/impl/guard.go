package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "dietlog/internal/delivery/context"
	"dietlog/internal/usecase"

	"go.uber.org/fx"
)

var publicRoutes = map[string]struct{}{
	usecase.RouteLogin:  {},
	usecase.RouteSignup: {},
	usecase.RouteLogout: {},
	usecase.RouteHealth: {},
}

// GuardParams holds dependencies for the guard, injected by Fx.
type GuardParams struct {
	fx.In

	Session usecase.SessionUsecase
	Store   usecase.StoreUsecase
	Logger  *slog.Logger
}

type guard struct {
	session usecase.SessionUsecase
	store   usecase.StoreUsecase
	logger  *slog.Logger
}

// NewGuard is the constructor for guard.
func NewGuard(params GuardParams) usecase.GuardUsecase {
	return &guard{
		session: params.Session,
		store:   params.Store,
		logger:  params.Logger,
	}
}

func (g *guard) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

func (g *guard) IsPublic(route string) bool {
	if route != "/" {
		route = strings.TrimRight(route, "/")
	}
	_, ok := publicRoutes[route]

	return ok
}

func (g *guard) Check(ctx context.Context, route string) usecase.Decision {
	if g.IsPublic(route) {
		return usecase.Decision{Allow: true, State: usecase.GuardStatePublic}
	}

	if !g.session.HasPersistedIdentity(ctx) {
		g.session.Clear(ctx)

		return deny()
	}

	if g.store.Loaded() && g.session.IsAuthenticated() {
		return usecase.Decision{Allow: true, State: usecase.GuardStateAuthenticated}
	}

	// Auth pending: concurrent navigations share one load.
	if err := g.store.FetchAllIfNeeded(ctx); err != nil {
		g.log(ctx).Warn("Navigation blocked by failed load", slog.String("route", route), slog.Any("error", err))
	}

	if !g.session.IsAuthenticated() || !g.store.Loaded() {
		return deny()
	}

	return usecase.Decision{Allow: true, State: usecase.GuardStateAuthenticated}
}

func deny() usecase.Decision {
	return usecase.Decision{Redirect: usecase.RouteLogin, State: usecase.GuardStateDenied}
}
