package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver

	"github.com/legitimatebusiness/todo/internal/config"
	"github.com/legitimatebusiness/todo/internal/migrations"
	"github.com/legitimatebusiness/todo/internal/platform/postgres"
	"github.com/legitimatebusiness/todo/internal/platform/sqlite"
	"github.com/legitimatebusiness/todo/internal/store"
)

const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

// setupAppDatabase establishes a connection to the configured database and
// configures the connection pool.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	switch cfg.Database.Driver {
	case driverSQLite:
		db, err := sqlite.Open(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established", "driver", driverSQLite)
		return db, nil

	case driverPostgres:
		db, err := sql.Open("pgx", cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}

		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		logger.Info("Database connection established", "driver", driverPostgres)
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// newTodoStore returns the TodoStore implementation for driver.
func newTodoStore(driver string, db *sql.DB, logger *slog.Logger) store.TodoStore {
	if driver == driverSQLite {
		return sqlite.NewSQLiteTodoStore(db, logger)
	}
	return postgres.NewPostgresTodoStore(db, logger)
}

// migrationDialect returns the migration set matching driver.
func migrationDialect(driver string) migrations.Dialect {
	if driver == driverSQLite {
		return migrations.SQLite
	}
	return migrations.Postgres
}
