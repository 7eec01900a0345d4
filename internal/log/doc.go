// Package log provides logging functionality with automatic truncation of
// oversized attribute values, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Truncation of oversized string attributes (record bodies, payload previews)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Truncation
//
// The TrimHandler caps string attribute values at MaxAttrLen runes. Analysis
// records carry localized disease descriptions and treatment warnings, and
// debug logging would otherwise put entire document bodies on a single
// terminal line. Truncation counts runes rather than bytes, so Arabic text is
// never cut mid-character.
//
// # Usage
//
//	// Create a logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("report generated",
//	    "filename", artifact.Filename,
//	    "language", cfg.Language,
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
