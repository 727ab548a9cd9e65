// Package main implements the entry point for the todo API server,
// which serves a todo list and a random cat fact over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/legitimatebusiness/todo/internal/config"
	"github.com/legitimatebusiness/todo/internal/migrations"
	"github.com/legitimatebusiness/todo/internal/platform/logger"
)

// options holds the parsed command line flags.
type options struct {
	// migrate is the migration command to run instead of starting the server.
	migrate string
	// configFile is an optional path to a config file.
	configFile string
}

// parseFlags parses the command line arguments (without the program name).
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrate, "migrate", "",
		"Run a database migration command (up, down, status, version, reset) and exit")
	fs.StringVar(&opts.configFile, "config", "", "Path to a config file")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch opts.migrate {
	case "", migrations.CommandUp, migrations.CommandDown, migrations.CommandStatus,
		migrations.CommandVersion, migrations.CommandReset:
	default:
		return options{}, fmt.Errorf("unknown migration command %q", opts.migrate)
	}

	return opts, nil
}

// main is the entry point for the todo server.
func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if err := run(context.Background(), opts); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and either executes
// the requested migration command or serves HTTP until shutdown.
func run(ctx context.Context, opts options) error {
	cfg, err := loadAppConfig(opts.configFile)
	if err != nil {
		return err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	db, err := setupAppDatabase(ctx, cfg, appLogger)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(ctx, cfg, db, opts.migrate, appLogger)
	}

	// Keep the schema current before serving requests.
	if err := runMigrations(ctx, cfg, db, migrations.CommandUp, appLogger); err != nil {
		_ = db.Close()
		return err
	}

	app := newApplication(cfg, appLogger, db)
	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from environment
// variables and the optional config file.
func loadAppConfig(configFile string) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
