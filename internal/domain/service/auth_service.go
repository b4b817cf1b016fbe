package service

import (
	"context"

	"dietlog/internal/domain/entity"
)

// LoginSucceededMessage is the exact message the auth service returns on success.
const LoginSucceededMessage = "登入成功"

// LoginResult is the body of a 200 from POST /login.
type LoginResult struct {
	Message string `json:"message"`
}

// AuthService is the authentication backend. The session cookie it sets is
// carried by every other service call.
type AuthService interface {
	// Signup succeeds only on 201 Created; 409 means the username is taken.
	Signup(ctx context.Context, credentials entity.Credentials) error
	Login(ctx context.Context, credentials entity.Credentials) (*LoginResult, error)
	WhoAmI(ctx context.Context) (*entity.WhoAmI, error)
	Logout(ctx context.Context) error
}
