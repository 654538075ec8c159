// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// JSON or text logging with configurable log levels and destination. Log
// records are kept apart from the console so they never mix with prompts.
package logger
