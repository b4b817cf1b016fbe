package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"dietlog/internal/delivery/http/response"
	"dietlog/internal/domain/service"
	"dietlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the login and signup screens and logout.
type AuthHandler struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(session usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{session: session, logger: logger}
}

// LoginScreen is the initial state of the login screen.
type LoginScreen struct {
	Message  string `json:"message,omitempty"`
	Redirect string `json:"redirect,omitempty"`
	LoggedIn bool   `json:"logged_in"`
}

// LoginPage shows the flash message carried in ?msg= (e.g. after signup).
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, LoginScreen{
		Message:  c.QueryParam("msg"),
		Redirect: c.QueryParam("redirect"),
		LoggedIn: h.session.IsAuthenticated(),
	}, "")
}

// Login handles the login form.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.session.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, struct {
		*usecase.LoginOutput
		response.Navigate
	}{
		LoginOutput: output,
		Navigate:    response.Navigate{Redirect: safeRedirect(c.QueryParam("redirect"))},
	}, service.LoginSucceededMessage)
}

// Signup handles the signup form and sends the user back to login.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	output, err := h.session.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	redirect := usecase.RouteLogin + "?" + url.Values{"msg": {output.Message}}.Encode()

	return response.Success(c, http.StatusCreated, response.Navigate{Redirect: redirect}, output.Message)
}

// Logout always succeeds locally.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.session.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, response.Navigate{Redirect: usecase.RouteLogin}, "")
}
