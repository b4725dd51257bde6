// Package auth holds the session state and the authentication
// operations: login, registration, logout, and the startup bootstrap
// that re-validates a persisted token against the server.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dchernov/campuskit/client"
	"github.com/dchernov/campuskit/storage"
)

// ErrRegistrationRestricted is returned when registration yields a
// non-student account. Registration is open to students only; admin
// accounts are provisioned elsewhere.
var ErrRegistrationRestricted = errors.New("registration is available to students only")

// sessionSnapshotKey is the storage key for the persisted session
// snapshot, restored at next process start before bootstrap runs.
const sessionSnapshotKey = "auth-storage"

type sessionSnapshot struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"is_authenticated"`
}

// Service owns the session and drives the auth endpoints through the
// gateway. Constructing a Service wires the gateway's session-expiry
// signal to session teardown.
type Service struct {
	client  *client.Client
	tokens  *storage.TokenStore
	store   storage.Store
	session *Session
	log     *slog.Logger
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = logger
	}
}

// NewService creates a Service over the given gateway and storage.
func NewService(c *client.Client, tokens *storage.TokenStore, store storage.Store, opts ...ServiceOption) *Service {
	s := &Service{
		client:  c,
		tokens:  tokens,
		store:   store,
		session: NewSession(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	c.OnSessionExpired(func() {
		s.session.Clear()
		s.clearSnapshot()
	})
	return s
}

// Session returns the session owned by this service.
func (s *Service) Session() *Session {
	return s.session
}

// Restore loads the persisted session snapshot, if any. It runs before
// CheckAuth so the UI can render the last known user while bootstrap
// re-validates the token.
func (s *Service) Restore() {
	raw, err := s.store.Get(sessionSnapshotKey)
	if err != nil {
		return
	}
	var snap sessionSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.log.Warn("discarding corrupt session snapshot", slog.Any("cause", err))
		s.store.Delete(sessionSnapshotKey)
		return
	}
	if snap.IsAuthenticated && snap.User != nil {
		s.session.SetUser(snap.User)
	}
}

// Login exchanges credentials for a token pair and populates the
// session.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	var resp AuthResponse
	if err := s.client.Post(ctx, "/auth/login", Credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}
	if err := s.establish(&resp); err != nil {
		return nil, err
	}
	return s.session.User(), nil
}

// Register creates a student account and logs it in. A response
// carrying any other role is rejected before tokens are stored.
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	var resp AuthResponse
	if err := s.client.Post(ctx, "/auth/register", Credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("registering: %w", err)
	}
	if resp.User.Role != RoleStudent {
		return nil, ErrRegistrationRestricted
	}
	if err := s.establish(&resp); err != nil {
		return nil, err
	}
	return s.session.User(), nil
}

// Logout clears tokens, session, and the persisted snapshot.
func (s *Service) Logout() {
	if err := s.tokens.Clear(); err != nil {
		s.log.Error("clearing tokens", slog.Any("cause", err))
	}
	s.session.Clear()
	s.clearSnapshot()
}

// Me fetches the current user snapshot from the server.
func (s *Service) Me(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.Get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckAuth is the startup bootstrap. With no stored access token it
// settles the session as unauthenticated without any network call.
// With a token present it validates against the server; the pipeline
// may transparently refresh a stale token underneath. Any unrecovered
// failure tears the session down the same way logout does.
func (s *Service) CheckAuth(ctx context.Context) error {
	s.session.MarkLoading(true)

	if _, ok := s.tokens.Access(); !ok {
		s.session.Clear()
		return nil
	}

	user, err := s.Me(ctx)
	if err != nil {
		s.Logout()
		return fmt.Errorf("validating session: %w", err)
	}

	s.session.SetUser(user)
	s.session.MarkLoading(false)
	s.persistSnapshot()
	return nil
}

// establish stores the token pair and populates the session after a
// successful login or registration.
func (s *Service) establish(resp *AuthResponse) error {
	if err := s.tokens.SetPair(resp.AccessToken, resp.RefreshToken); err != nil {
		return fmt.Errorf("persisting tokens: %w", err)
	}
	s.session.SetUser(&resp.User)
	s.session.MarkLoading(false)
	s.persistSnapshot()
	return nil
}

func (s *Service) persistSnapshot() {
	snap := sessionSnapshot{
		User:            s.session.User(),
		IsAuthenticated: s.session.IsAuthenticated(),
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		s.log.Error("encoding session snapshot", slog.Any("cause", err))
		return
	}
	if err := s.store.Set(sessionSnapshotKey, string(raw)); err != nil {
		s.log.Error("persisting session snapshot", slog.Any("cause", err))
	}
}

func (s *Service) clearSnapshot() {
	if err := s.store.Delete(sessionSnapshotKey); err != nil {
		s.log.Error("clearing session snapshot", slog.Any("cause", err))
	}
}
