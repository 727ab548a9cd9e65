package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/legitimatebusiness/todo/internal/config"
	"github.com/legitimatebusiness/todo/internal/platform/catfact"
	"github.com/legitimatebusiness/todo/internal/service"
	"github.com/legitimatebusiness/todo/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB

	todoStore store.TodoStore

	todoService service.TodoService
	factService *service.FactService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be open and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.todoStore = newTodoStore(cfg.Database.Driver, db, logger)
	app.todoService = service.NewTodoService(db, app.todoStore, logger)

	factClient := catfact.NewClient(cfg.CatFact.URL, nil)
	app.factService = service.NewFactService(factClient, logger)

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
