// Package handler contains the HTTP handlers for the screens.
package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"dietlog/internal/delivery/http/response"
	domainerrors "dietlog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the process is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	return parseID(c.Param("id"))
}

// queryID parses an optional ?id=; absent means 0.
func queryID(c echo.Context) (int64, error) {
	raw := strings.TrimSpace(c.QueryParam("id"))
	if raw == "" {
		return 0, nil
	}

	return parseID(raw)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}

// confirmed reads ?confirm=true, the stand-in for a confirmation dialog.
func confirmed(c echo.Context) bool {
	ok, _ := strconv.ParseBool(c.QueryParam("confirm"))

	return ok
}

// safeRedirect keeps post-login navigation on this app. Browsers read a
// leading "/\" like "//"; url.Parse rejects control characters.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || len(target) > 1 && (target[1] == '/' || target[1] == '\\') {
		return "/"
	}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return "/"
	}

	return target
}
