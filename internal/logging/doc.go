// Package logging provides structured logging for chuk-acp-agent using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, context propagation, and helpers for testing. All loggers are
// based on the standard library's [log/slog] package.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("session started", "session", id)
//
// # Context
//
// Loggers travel with a [context.Context]:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("resolved command")
//
// [FromContext] falls back to [slog.Default] when no logger is attached.
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework.
package logging
