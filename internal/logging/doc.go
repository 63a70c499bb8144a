// Package logging builds the zerolog loggers used across pickr.
//
// Key features:
//   - Level, format and destination taken from configuration
//   - File logging with automatic fallback to stderr
//   - Stderr output held back while the selection UI owns the terminal
//   - Per-session trace ids (ULID) attached to every event logged with a context
package logging
