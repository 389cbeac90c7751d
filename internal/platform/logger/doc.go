// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. The CLI writes logs to stderr so that rendered study
// content on stdout stays clean.
package logger
