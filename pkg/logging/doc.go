// Package logging provides structured logging utilities for verbump.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so every component logs the same way: JSON records on stderr, tagged with
// the module name and build version.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default for unknown names)
//   - WARN/WARNING: Warning messages
//   - ERROR: Failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	logging.SetDefaultStructuredLoggerWithLevel("verbump", version, "warn")
//	slog.Info("version bumped", "path", path, "current", current)
//
// Creating a dedicated logger:
//
//	logger := logging.NewStructuredLogger("verbump", "v1.0.0", "debug")
//
// # Environment Configuration
//
// SetDefaultStructuredLogger takes the level from LOG_LEVEL (EnvLogLevel):
//
//	LOG_LEVEL=debug verbump bump
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "version bumped",
//	    "module": "verbump",
//	    "version": "v1.0.0",
//	    "path": "/src/project/version.txt"
//	}
//
// Debug records additionally carry a "source" object.
package logging
