// Package logger provides structured logging for the application.
//
// It configures Go's standard library log/slog package for JSON output at a
// configurable level, and carries request-scoped loggers through a
// context.Context so store and service code log with the request's trace id.
package logger
