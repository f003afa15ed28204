// Package log provides logging utilities for wfkit.
//
// The main export is SecureHandler, an slog.Handler wrapper that masks
// GitHub credentials before log records reach the underlying handler.
// The fetch command can carry an API token loaded from the config file;
// wrapping the handler guarantees the token never appears in diagnostic
// output, no matter which call site logs a request.
package log
