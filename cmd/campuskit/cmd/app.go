package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dchernov/campuskit/api"
	"github.com/dchernov/campuskit/auth"
	"github.com/dchernov/campuskit/client"
	"github.com/dchernov/campuskit/config"
	"github.com/dchernov/campuskit/storage"
	bboltstore "github.com/dchernov/campuskit/storage/bbolt"
)

// app wires the gateway and services over the durable local store.
type app struct {
	cfg    *config.Config
	store  *bboltstore.Store
	tokens *storage.TokenStore
	client *client.Client
	auth   *auth.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	store, err := bboltstore.NewStoreFromFile(filepath.Join(cfg.DataDir, "state.db"), nil)
	if err != nil {
		return nil, fmt.Errorf("opening client state: %w", err)
	}

	tokens := storage.NewTokenStore(store)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	c := client.New(cfg.BaseURL, tokens,
		client.WithLogger(logger),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		client.WithSessionExpiredHandler(func() {
			fmt.Fprintln(os.Stderr, "session expired, run `campuskit login` to sign in again")
		}),
	)

	svc := auth.NewService(c, tokens, store, auth.WithLogger(logger))
	svc.Restore()

	return &app{cfg: cfg, store: store, tokens: tokens, client: c, auth: svc}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

func (a *app) students() *api.Students {
	return api.NewStudents(a.client)
}

func (a *app) forum() *api.Forum {
	return api.NewForum(a.client)
}
