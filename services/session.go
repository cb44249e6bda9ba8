package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"skillspot/api"
	"skillspot/auth"
	"skillspot/domain"
	"skillspot/repositories"
)

type ISessionController interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, req api.RegisterRequest) error
	Logout(ctx context.Context)
	Bootstrap(ctx context.Context) error
	State() domain.SessionState
	Identity() (domain.Identity, bool)
	IsAuthenticated() bool
	HasCredentials() bool
}

// SessionController owns the authentication state machine. It is the only
// writer of the credential store; collaborators read the access token
// through the store's read-only view. Concurrent calls are not mutually
// excluded: the last completed transition wins, the UI is expected to
// prevent duplicate submission.
type SessionController struct {
	authAPI     api.IAuthAPI
	credentials repositories.ICredentialRepository
	log         *slog.Logger

	mu       sync.Mutex
	state    domain.SessionState
	identity *domain.Identity
}

func NewSessionController(authAPI api.IAuthAPI, credentials repositories.ICredentialRepository, log *slog.Logger) *SessionController {
	return &SessionController{
		authAPI:     authAPI,
		credentials: credentials,
		log:         log,
		state:       domain.SessionAnonymous,
	}
}

// Login obtains a credential pair, persists it, then resolves the identity.
// A failure at any step leaves no partial state behind: credentials are
// cleared and the machine lands on Failed with the reason surfaced.
func (s *SessionController) Login(ctx context.Context, email, password string) error {
	s.setState(domain.SessionBootstrapping)

	pair, err := s.authAPI.Login(ctx, email, password)
	if err != nil {
		s.fail()
		return err
	}
	if err := s.credentials.Set(pair); err != nil {
		s.fail()
		return err
	}
	identity, err := s.authAPI.Me(ctx)
	if err != nil {
		// Half-authenticated is not a state: unwind the stored pair.
		s.fail()
		return err
	}

	s.mu.Lock()
	s.identity = &identity
	s.state = domain.SessionAuthenticated
	s.mu.Unlock()
	return nil
}

// Register creates the account then immediately logs in with the same
// credentials. A registration failure short-circuits without a login
// attempt.
func (s *SessionController) Register(ctx context.Context, req api.RegisterRequest) error {
	if err := auth.ValidateRegistration(req); err != nil {
		return err
	}
	if _, err := s.authAPI.Register(ctx, req); err != nil {
		return err
	}
	return s.Login(ctx, req.Email, req.Password)
}

// Logout invalidates the session server-side on a best-effort basis and
// unconditionally tears down local state. A server failure is logged, never
// surfaced: local teardown always proceeds.
func (s *SessionController) Logout(ctx context.Context) {
	if pair, ok, _ := s.credentials.Get(); ok {
		if err := s.authAPI.Logout(ctx, pair.Refresh); err != nil {
			s.log.Warn("server-side logout failed", slog.String("error", err.Error()))
		}
	}
	if err := s.credentials.Clear(); err != nil {
		s.log.Warn("credential clear failed", slog.String("error", err.Error()))
	}
	s.mu.Lock()
	s.identity = nil
	s.state = domain.SessionAnonymous
	s.mu.Unlock()
}

// Bootstrap resumes a session from persisted credentials. Idempotent: with
// no pair it settles on Anonymous, with a resolved identity it is a no-op.
// A pair whose identity cannot be fetched is never trusted; the failure
// cascades like Logout so the machine always lands on a clean state. The
// outcome is exposed via State, not an error.
func (s *SessionController) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	if s.identity != nil && s.state == domain.SessionAuthenticated {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	pair, ok, err := s.credentials.Get()
	if err != nil {
		return err
	}
	if !ok {
		s.setState(domain.SessionAnonymous)
		return nil
	}

	s.setState(domain.SessionBootstrapping)

	// An expired access token would fail the identity fetch anyway; trade
	// one round trip for a refresh attempt first.
	if auth.Expired(pair.Access, time.Now()) {
		access, err := s.authAPI.RefreshToken(ctx, pair.Refresh)
		if err != nil {
			s.log.Info("token refresh failed, clearing session", slog.String("error", err.Error()))
			s.Logout(ctx)
			return nil
		}
		pair.Access = access
		if err := s.credentials.Set(pair); err != nil {
			s.Logout(ctx)
			return err
		}
	}

	identity, err := s.authAPI.Me(ctx)
	if err != nil {
		s.log.Info("identity fetch failed, clearing session", slog.String("error", err.Error()))
		s.Logout(ctx)
		return nil
	}

	s.mu.Lock()
	s.identity = &identity
	s.state = domain.SessionAuthenticated
	s.mu.Unlock()
	return nil
}

func (s *SessionController) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *SessionController) Identity() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

func (s *SessionController) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == domain.SessionAuthenticated && s.identity != nil
}

// HasCredentials reports whether a pair is persisted, resolved or not. The
// navigation guard uses this to detect the startup race where a token exists
// but the identity has not been fetched yet.
func (s *SessionController) HasCredentials() bool {
	_, ok, err := s.credentials.Get()
	return err == nil && ok
}

func (s *SessionController) setState(state domain.SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// fail clears any stored pair and lands on Failed.
func (s *SessionController) fail() {
	if err := s.credentials.Clear(); err != nil {
		s.log.Warn("credential clear failed", slog.String("error", err.Error()))
	}
	s.mu.Lock()
	s.identity = nil
	s.state = domain.SessionFailed
	s.mu.Unlock()
}
