// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dietlog/internal/delivery/http/middleware"
	"dietlog/internal/delivery/http/router/handler"
	"dietlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	DashboardHandler *handler.DashboardHandler
	RecordHandler    *handler.RecordHandler
	FoodHandler      *handler.FoodHandler
	GuardMiddleware  *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth      *handler.AuthHandler
	dashboard *handler.DashboardHandler
	records   *handler.RecordHandler
	foods     *handler.FoodHandler
	guard     *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:      params.AuthHandler,
		dashboard: params.DashboardHandler,
		records:   params.RecordHandler,
		foods:     params.FoodHandler,
		guard:     params.GuardMiddleware,
	}
}

// RegisterRoutes sets up every screen. The guard runs before all of them and
// lets the public ones through.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.guard.Navigate)

	e.GET(usecase.RouteHealth, handler.HealthCheck)

	e.GET(usecase.RouteLogin, r.auth.LoginPage)
	e.POST(usecase.RouteLogin, r.auth.Login)
	e.POST(usecase.RouteSignup, r.auth.Signup)
	e.POST(usecase.RouteLogout, r.auth.Logout)

	e.GET(usecase.RouteDashboard, r.dashboard.Today)

	records := e.Group(usecase.RouteRecords)
	{
		records.GET("", r.records.List)
		records.GET("/form", r.records.Form)
		records.POST("", r.records.Create)
		records.PUT("/:id", r.records.Update)
		records.DELETE("/:id", r.records.Delete)
	}

	foods := e.Group(usecase.RouteCustomFoods)
	{
		foods.GET("", r.foods.List)
		foods.GET("/form", r.foods.Form)
		foods.POST("", r.foods.Create)
		foods.PUT("/:id", r.foods.Update)
		foods.DELETE("/:id", r.foods.Delete)
	}
}
