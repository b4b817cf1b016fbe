package repository

import (
	"context"

	"dietlog/internal/domain/entity"

	"github.com/pkg/errors"
)

var ErrIdentityNotFound = errors.New("identity not found")

// IdentityRepository persists the logged-in user marker across restarts.
// It is the client's cached approximation of the server session, never the truth.
type IdentityRepository interface {
	// Load returns ErrIdentityNotFound when no username is stored.
	Load(ctx context.Context) (*entity.Identity, error)

	// Save replaces both values atomically.
	Save(ctx context.Context, identity entity.Identity) error

	// Clear removes both values; clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
