package remote

import (
	"context"
	"net/http"

	"dietlog/config"
	"dietlog/internal/domain/entity"
	"dietlog/internal/domain/service"

	"github.com/pkg/errors"
)

type authClient struct {
	ep *endpoint
}

// NewAuthClient creates the auth service client.
func NewAuthClient(transport *Transport, cfg *config.Config) (service.AuthService, error) {
	ep, err := transport.endpoint("auth", cfg.Remote.AuthBaseURL)
	if err != nil {
		return nil, err
	}

	return &authClient{ep: ep}, nil
}

func (c *authClient) Signup(ctx context.Context, credentials entity.Credentials) error {
	status, _, err := c.ep.call(ctx, http.MethodPost, "/signup", nil, credentials, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return &service.StatusError{Op: "POST /signup", StatusCode: status}
	}

	return nil
}

func (c *authClient) Login(ctx context.Context, credentials entity.Credentials) (*service.LoginResult, error) {
	var result service.LoginResult
	if _, _, err := c.ep.call(ctx, http.MethodPost, "/login", nil, credentials, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *authClient) WhoAmI(ctx context.Context) (*entity.WhoAmI, error) {
	var who entity.WhoAmI
	_, decoded, err := c.ep.call(ctx, http.MethodGet, "/whoami", nil, nil, &who)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, errors.New("GET /whoami: empty response")
	}

	return &who, nil
}

func (c *authClient) Logout(ctx context.Context) error {
	_, _, err := c.ep.call(ctx, http.MethodPost, "/logout", nil, nil, nil)

	return err
}
