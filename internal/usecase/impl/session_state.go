// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "dietlog/internal/delivery/context"
	"dietlog/internal/domain/entity"
	domainerrors "dietlog/internal/domain/errors"
	"dietlog/internal/domain/repository"
	"dietlog/internal/domain/service"
	"dietlog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionParams holds dependencies for the session state, injected by Fx.
type SessionParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Auth         service.AuthService
	Logger       *slog.Logger
}

// sessionState implements the SessionUsecase interface.
type sessionState struct {
	identityRepo repository.IdentityRepository
	auth         service.AuthService
	logger       *slog.Logger

	mu      sync.RWMutex
	session entity.Session

	listenersMu sync.Mutex
	listeners   []func(ctx context.Context)
}

// NewSessionState is the constructor for sessionState. The authenticated flag
// starts from the persisted marker.
func NewSessionState(params SessionParams) usecase.SessionUsecase {
	state := &sessionState{
		identityRepo: params.IdentityRepo,
		auth:         params.Auth,
		logger:       params.Logger,
	}

	identity, err := params.IdentityRepo.Load(context.Background())
	switch {
	case err == nil:
		state.session = entity.Session{LoggedIn: true, UserID: identity.UserID, Username: identity.Username}
	case !errors.Is(err, repository.ErrIdentityNotFound):
		params.Logger.Warn("Failed to read persisted identity", slog.Any("error", err))
	}

	return state
}

func (s *sessionState) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *sessionState) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.LoggedIn
}

func (s *sessionState) Current() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

func (s *sessionState) HasPersistedIdentity(ctx context.Context) bool {
	_, err := s.identityRepo.Load(ctx)
	if err != nil && !errors.Is(err, repository.ErrIdentityNotFound) {
		s.log(ctx).Warn("Failed to read persisted identity", slog.Any("error", err))
	}

	return err == nil
}

func (s *sessionState) MarkAuthenticated(ctx context.Context, userID entity.UserID, username string) error {
	return s.establish(ctx, userID, username, false)
}

// establish persists the identity and installs it. fresh marks a new server
// session, which invalidates whatever was cached even for the same user.
func (s *sessionState) establish(ctx context.Context, userID entity.UserID, username string, fresh bool) error {
	if err := s.identityRepo.Save(ctx, entity.Identity{UserID: userID, Username: username}); err != nil {
		return errors.Wrap(err, "persist identity")
	}

	s.install(ctx, entity.Session{LoggedIn: true, UserID: userID, Username: username}, fresh)

	return nil
}

// install swaps the in-memory session. Listeners run before the swap so shared
// data belonging to the previous session is gone by the time the new one is visible.
func (s *sessionState) install(ctx context.Context, next entity.Session, fresh bool) {
	prev := s.Current()
	if prev.LoggedIn && (fresh || prev.UserID != next.UserID) {
		s.log(ctx).Info("Session switched, dropping shared data",
			slog.String("previous_user_id", string(prev.UserID)),
			slog.String("user_id", string(next.UserID)),
		)
		s.notifyClear(ctx)
	}

	s.mu.Lock()
	s.session = next
	s.mu.Unlock()

	s.log(ctx).Info("Session established", slog.String("user_id", string(next.UserID)), slog.String("username", next.Username))
}

func (s *sessionState) Clear(ctx context.Context) {
	if err := s.identityRepo.Clear(ctx); err != nil {
		s.log(ctx).Error("Failed to clear persisted identity", slog.Any("error", err))
	}

	s.mu.Lock()
	wasLoggedIn := s.session.LoggedIn
	s.session = entity.Session{}
	s.mu.Unlock()

	if wasLoggedIn {
		s.log(ctx).Info("Session cleared")
	}

	s.notifyClear(ctx)
}

func (s *sessionState) notifyClear(ctx context.Context) {
	s.listenersMu.Lock()
	listeners := append([]func(context.Context){}, s.listeners...)
	s.listenersMu.Unlock()

	for _, listener := range listeners {
		listener(ctx)
	}
}

func (s *sessionState) OnClear(listener func(ctx context.Context)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	s.listeners = append(s.listeners, listener)
}

func (s *sessionState) Reconcile(ctx context.Context) bool {
	who, err := s.auth.WhoAmI(ctx)
	if err != nil {
		s.log(ctx).Warn("Identity check failed", slog.Any("error", err))
		s.Clear(ctx)

		return false
	}
	if !who.LoggedIn {
		s.log(ctx).Info("Server reports no session")
		s.Clear(ctx)

		return false
	}

	current := s.Current()
	if current.LoggedIn && current.UserID == who.UserID && current.Username == who.Username {
		return true
	}

	if err := s.MarkAuthenticated(ctx, who.UserID, who.Username); err != nil {
		// The server is the authority; keep going with the in-memory identity.
		s.log(ctx).Error("Failed to sync identity", slog.Any("error", err))
		s.install(ctx, entity.Session{LoggedIn: true, UserID: who.UserID, Username: who.Username}, false)
	}

	return true
}

func (s *sessionState) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	s.log(ctx).Info("Logging in", slog.String("username", input.Username))

	result, err := s.auth.Login(ctx, entity.Credentials{Username: input.Username, Password: input.Password})
	if err != nil {
		return nil, s.remoteLoginError(ctx, err)
	}
	if result.Message != service.LoginSucceededMessage {
		return nil, domainerrors.ErrLoginFailed
	}

	who, err := s.auth.WhoAmI(ctx)
	if err != nil {
		return nil, s.remoteLoginError(ctx, err)
	}
	if !who.LoggedIn {
		return nil, domainerrors.ErrLoginFailed
	}

	if err := s.establish(ctx, who.UserID, who.Username, true); err != nil {
		return nil, errors.Wrap(err, "failed to establish session")
	}

	return &usecase.LoginOutput{UserID: who.UserID, Username: who.Username}, nil
}

// remoteLoginError surfaces the server's own text when it sent one.
func (s *sessionState) remoteLoginError(ctx context.Context, err error) error {
	s.log(ctx).Warn("Login request failed", slog.Any("error", err))

	if msg := service.ServerMessage(err); msg != "" {
		return domainerrors.ErrLoginFailed.WithMessage(msg)
	}

	return domainerrors.ErrNetwork.WithDetails(err.Error())
}

func (s *sessionState) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	s.log(ctx).Info("Signing up", slog.String("username", input.Username))

	err := s.auth.Signup(ctx, entity.Credentials{Username: input.Username, Password: input.Password})
	if err != nil {
		s.log(ctx).Warn("Signup failed", slog.Any("error", err))

		if service.IsConflict(err) {
			return nil, domainerrors.ErrUsernameTaken
		}

		return nil, domainerrors.ErrSignupFailed.WithMessage(strings.TrimSpace(service.ServerMessage(err)))
	}

	return &usecase.SignupOutput{Message: usecase.SignupSucceededMessage}, nil
}

func (s *sessionState) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log(ctx).Warn("Logout request failed, clearing local session anyway", slog.Any("error", err))
	}

	s.Clear(ctx)
}
