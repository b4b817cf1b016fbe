package middleware

import (
	"net/http"
	"net/url"

	deliverymiddleware "dietlog/internal/delivery/middleware"
	"dietlog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GuardMiddleware runs the navigation guard before every screen.
type GuardMiddleware struct {
	guard usecase.GuardUsecase
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(guard usecase.GuardUsecase) *GuardMiddleware {
	return &GuardMiddleware{guard: guard}
}

// Navigate allows the request or redirects to the login screen, remembering
// where the user was headed.
func (m *GuardMiddleware) Navigate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		decision := m.guard.Check(req.Context(), req.URL.Path)
		c.Set(deliverymiddleware.KeyGuardState, string(decision.State))

		if decision.Allow {
			return next(c)
		}

		target := decision.Redirect
		if original := req.URL.RequestURI(); original != "" && original != usecase.RouteDashboard {
			target += "?" + url.Values{"redirect": {original}}.Encode()
		}

		return c.Redirect(http.StatusFound, target)
	}
}
