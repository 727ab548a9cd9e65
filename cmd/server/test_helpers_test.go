package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/legitimatebusiness/todo/internal/config"
	"github.com/stretchr/testify/require"
)

// newTestApplication builds an application over a migrated in-memory
// SQLite database whose cat facts come from upstream.
func newTestApplication(t *testing.T, upstream string) *application {
	t.Helper()

	cfg := &config.Config{
		Server:   config.ServerConfig{Port: 0, LogLevel: "debug"},
		Database: config.DatabaseConfig{Driver: driverSQLite, URL: ":memory:"},
		CatFact:  config.CatFactConfig{URL: upstream},
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx := context.Background()

	db, err := setupAppDatabase(ctx, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, runMigrations(ctx, cfg, db, "up", logger))
	return newApplication(cfg, logger, db)
}

// newUpstream starts a cat-fact stub that answers every request with
// status and body.
func newUpstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}
