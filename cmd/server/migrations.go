package main

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/legitimatebusiness/todo/internal/config"
	"github.com/legitimatebusiness/todo/internal/migrations"
)

// runMigrations executes a goose migration command against db.
// Every log line of the run carries the same correlation ID.
func runMigrations(
	ctx context.Context,
	cfg *config.Config,
	db *sql.DB,
	command string,
	logger *slog.Logger,
) error {
	migrationLogger := logger.With(
		"correlation_id", uuid.NewString(),
		"component", "migrations",
		"command", command,
	)

	startTime := time.Now()
	migrationLogger.Info("Starting migration operation", "driver", cfg.Database.Driver)

	err := migrations.Run(ctx, db, migrationDialect(cfg.Database.Driver), command, migrationLogger)
	if err != nil {
		migrationLogger.Error("Migration operation failed",
			"error", err,
			"duration_ms", time.Since(startTime).Milliseconds())
		return err
	}

	migrationLogger.Info("Migration operation completed",
		"duration_ms", time.Since(startTime).Milliseconds())
	return nil
}
