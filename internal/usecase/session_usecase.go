// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dietlog/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// SignupInput defines the data required to register.
type SignupInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// LoginOutput describes the session established by a login.
type LoginOutput struct {
	UserID   entity.UserID `json:"user_id"`
	Username string        `json:"username"`
}

// SignupOutput carries the flash message shown on the login screen afterwards.
type SignupOutput struct {
	Message string `json:"message"`
}

// SignupSucceededMessage is shown on the login screen after registering.
const SignupSucceededMessage = "已註冊，請重新登入。"

// SessionUsecase tracks whether the user is authenticated. The persisted
// identity marker is a fast-path approximation; Reconcile asks the server.
type SessionUsecase interface {
	IsAuthenticated() bool
	Current() entity.Session

	// HasPersistedIdentity reads the marker; it never touches the network.
	HasPersistedIdentity(ctx context.Context) bool

	// MarkAuthenticated persists the identity. Switching to a different user
	// notifies OnClear listeners first so no data cached for the previous user survives.
	MarkAuthenticated(ctx context.Context, userID entity.UserID, username string) error

	// Clear wipes the marker, drops the flag and notifies OnClear listeners.
	Clear(ctx context.Context)

	// Reconcile fails closed: any answer other than logged_in=true clears the session.
	Reconcile(ctx context.Context) bool

	OnClear(listener func(ctx context.Context))

	// Login starts a fresh server session; data cached under any earlier session is dropped.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// Logout is best-effort remotely and always clears locally.
	Logout(ctx context.Context)
}
