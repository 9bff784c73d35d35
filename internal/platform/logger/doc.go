// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, a context carrier for request-scoped loggers and an
// in-memory handler for asserting on log output in tests.
package logger
