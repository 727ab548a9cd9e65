// Package logger provides structured logging functionality for the application.
//
// It uses the standard library log/slog package with a JSON handler and a
// configurable level, and carries request-scoped loggers in a context.Context.
package logger
