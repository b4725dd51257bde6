package auth_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchernov/campuskit/auth"
	"github.com/dchernov/campuskit/client"
	"github.com/dchernov/campuskit/storage"
	"github.com/dchernov/campuskit/storage/memory"
)

type countingTransport struct {
	requests atomic.Int32
	base     http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.requests.Add(1)
	return t.base.RoundTrip(req)
}

type fixture struct {
	svc       *auth.Service
	tokens    *storage.TokenStore
	store     storage.Store
	transport *countingTransport
}

func newFixture(t *testing.T, handler http.Handler) *fixture {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := memory.NewStore()
	tokens := storage.NewTokenStore(store)
	transport := &countingTransport{base: http.DefaultTransport}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c := client.New(srv.URL, tokens,
		client.WithLogger(logger),
		client.WithHTTPClient(&http.Client{Transport: transport}),
	)
	svc := auth.NewService(c, tokens, store, auth.WithLogger(logger))
	return &fixture{svc: svc, tokens: tokens, store: store, transport: transport}
}

func authHandler(role string) http.Handler {
	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"access_token": "AT1", "refresh_token": "RT1", "user": {"id": 1, "email": "a@b.com", "role": "student"}}`))
	})
	r.Post("/auth/register", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"access_token": "AT1", "refresh_token": "RT1", "user": {"id": 2, "email": "n@b.com", "role": "` + role + `"}}`))
	})
	r.Get("/auth/me", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer AT1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id": 1, "email": "a@b.com", "role": "student"}`))
	})
	r.Post("/auth/refresh", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	return r
}

func TestLogin(t *testing.T) {
	f := newFixture(t, authHandler("student"))

	user, err := f.svc.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, auth.RoleStudent, user.Role)

	access, ok := f.tokens.Access()
	require.True(t, ok)
	assert.Equal(t, "AT1", access)
	refresh, ok := f.tokens.Refresh()
	require.True(t, ok)
	assert.Equal(t, "RT1", refresh)

	sess := f.svc.Session()
	assert.True(t, sess.IsAuthenticated())
	assert.False(t, sess.IsLoading())
	assert.Equal(t, int64(1), sess.User().ID)
}

func TestRegisterStudent(t *testing.T) {
	f := newFixture(t, authHandler("student"))

	user, err := f.svc.Register(context.Background(), "n@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleStudent, user.Role)
	assert.True(t, f.svc.Session().IsAuthenticated())
}

func TestRegisterRejectsNonStudent(t *testing.T) {
	f := newFixture(t, authHandler("admin"))

	_, err := f.svc.Register(context.Background(), "n@b.com", "x")
	require.ErrorIs(t, err, auth.ErrRegistrationRestricted)

	_, ok := f.tokens.Access()
	assert.False(t, ok, "tokens must not be stored for a rejected registration")
	assert.False(t, f.svc.Session().IsAuthenticated())
}

func TestLogout(t *testing.T) {
	f := newFixture(t, authHandler("student"))
	_, err := f.svc.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	f.svc.Logout()

	_, ok := f.tokens.Access()
	assert.False(t, ok)
	_, ok = f.tokens.Refresh()
	assert.False(t, ok)
	assert.False(t, f.svc.Session().IsAuthenticated())
	assert.False(t, f.svc.Session().IsLoading())
}

func TestCheckAuthWithoutToken(t *testing.T) {
	f := newFixture(t, authHandler("student"))

	require.NoError(t, f.svc.CheckAuth(context.Background()))

	sess := f.svc.Session()
	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.IsLoading())
	assert.Equal(t, int32(0), f.transport.requests.Load(), "bootstrap without a token must not touch the network")
}

func TestCheckAuthWithValidToken(t *testing.T) {
	f := newFixture(t, authHandler("student"))
	require.NoError(t, f.tokens.SetPair("AT1", "RT1"))

	require.NoError(t, f.svc.CheckAuth(context.Background()))

	sess := f.svc.Session()
	assert.True(t, sess.IsAuthenticated())
	assert.False(t, sess.IsLoading())
	assert.Equal(t, "a@b.com", sess.User().Email)
}

func TestCheckAuthWithStaleTokenTearsDown(t *testing.T) {
	f := newFixture(t, authHandler("student"))
	require.NoError(t, f.tokens.SetPair("stale", "also-stale"))

	err := f.svc.CheckAuth(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrSessionExpired)

	sess := f.svc.Session()
	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.IsLoading())
	_, ok := f.tokens.Access()
	assert.False(t, ok)
}

func TestRestoreSnapshot(t *testing.T) {
	f := newFixture(t, authHandler("student"))
	require.NoError(t, f.store.Set("auth-storage", `{"user": {"id": 5, "email": "s@b.com", "role": "student"}, "is_authenticated": true}`))

	f.svc.Restore()

	sess := f.svc.Session()
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, int64(5), sess.User().ID)
	assert.True(t, sess.IsLoading(), "restore must not settle loading; bootstrap does")
}

func TestRestoreDiscardsCorruptSnapshot(t *testing.T) {
	f := newFixture(t, authHandler("student"))
	require.NoError(t, f.store.Set("auth-storage", "{not json"))

	f.svc.Restore()

	assert.False(t, f.svc.Session().IsAuthenticated())
	_, err := f.store.Get("auth-storage")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
