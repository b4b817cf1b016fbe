package usecase

import "context"

// GuardState is where a navigation ended up.
type GuardState string

const (
	GuardStatePublic        GuardState = "public"
	GuardStateAuthPending   GuardState = "auth_pending"
	GuardStateAuthenticated GuardState = "authenticated"
	GuardStateDenied        GuardState = "denied"
)

// Screen routes.
const (
	RouteLogin       = "/login"
	RouteSignup      = "/signup"
	RouteDashboard   = "/"
	RouteRecords     = "/records"
	RouteCustomFoods = "/foods"
	RouteLogout      = "/logout"
	RouteHealth      = "/health"
)

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Allow    bool
	Redirect string
	State    GuardState
}

// GuardUsecase runs before every navigation.
type GuardUsecase interface {
	IsPublic(route string) bool
	Check(ctx context.Context, route string) Decision
}
