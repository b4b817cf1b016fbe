// Package badger persists the client's identity marker in an embedded BadgerDB.
package badger

import (
	"context"
	"log/slog"
	"os"

	"dietlog/config"
	"dietlog/internal/domain/entity"
	"dietlog/internal/domain/repository"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// The two keys mirror the values a browser client keeps in local storage.
var (
	keyUserID   = []byte("identity/userId")
	keyUsername = []byte("identity/username")
)

// IdentityRepository stores the identity marker in BadgerDB.
type IdentityRepository struct {
	db *badger.DB
}

// Params holds dependencies for the repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured store and closes it when the app stops.
func New(params Params) (repository.IdentityRepository, error) {
	cfg := params.Config.Identity

	repo, err := Open(cfg.Path, cfg.InMemory)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Identity store opened",
		slog.String("path", cfg.Path),
		slog.Bool("in_memory", cfg.InMemory),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing identity store")

			return repo.Close()
		},
	})

	return repo, nil
}

// Open opens a store at dirPath, or an in-memory one when inMemory is set.
func Open(dirPath string, inMemory bool) (*IdentityRepository, error) {
	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dirPath, 0o700); err != nil {
			return nil, errors.Wrapf(err, "create identity dir %s", dirPath)
		}
		opts = badger.DefaultOptions(dirPath)
	}

	db, err := badger.Open(opts.WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, errors.Wrap(err, "open identity store")
	}

	return &IdentityRepository{db: db}, nil
}

// Close releases the underlying database.
func (r *IdentityRepository) Close() error {
	return errors.WithStack(r.db.Close())
}

func (r *IdentityRepository) Load(ctx context.Context) (*entity.Identity, error) {
	var identity entity.Identity

	err := r.db.View(func(txn *badger.Txn) error {
		username, err := readString(txn, keyUsername)
		if err != nil {
			return err
		}
		if username == "" {
			return repository.ErrIdentityNotFound
		}
		identity.Username = username

		userID, err := readString(txn, keyUserID)
		if err != nil {
			return err
		}
		identity.UserID = entity.UserID(userID)

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "load identity")
	}

	return &identity, nil
}

func (r *IdentityRepository) Save(ctx context.Context, identity entity.Identity) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(keyUserID, []byte(identity.UserID)); err != nil {
			return err
		}

		return txn.Set(keyUsername, []byte(identity.Username))
	})

	return errors.Wrap(err, "save identity")
}

func (r *IdentityRepository) Clear(ctx context.Context) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		for _, key := range [][]byte{keyUserID, keyUsername} {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		return nil
	})

	return errors.Wrap(err, "clear identity")
}

// readString returns "" for a missing key.
func readString(txn *badger.Txn, key []byte) (string, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	value, err := item.ValueCopy(nil)
	if err != nil {
		return "", err
	}

	return string(value), nil
}
