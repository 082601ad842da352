// Package logging provides structured logging helpers built on log/slog.
//
// It defines the canonical attribute keys used across the codebase so
// that log entries from the MCP tool layer, the Things client and the
// instrumentation pipeline can be correlated by consistent field names.
package logging
