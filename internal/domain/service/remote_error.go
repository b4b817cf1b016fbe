// Package service defines the contracts of the remote services the client depends on.
// Implementations live in infra; usecases only see these interfaces.
package service

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// StatusError is a non-2xx answer from a remote service.
type StatusError struct {
	Op         string // e.g. "POST /login"
	StatusCode int
	Message    string // the service's "error" text, when it sent one
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// StatusCode extracts the remote status from err, or 0 for transport failures.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	return 0
}

// ServerMessage extracts the remote "error" text from err, if any.
func ServerMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}

	return ""
}

// IsConflict reports a 409, which the services use for duplicate names.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}
