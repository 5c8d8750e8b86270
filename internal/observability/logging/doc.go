// Package logging provides structured logging utilities with context propagation.
//
// Key features:
//   - JSON and text output formats
//   - Run ID propagation for correlating one CLI invocation
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	level, _ := logging.ParseLevel("debug")
//	logger := logging.New(os.Stderr, logging.FormatJSON, level)
//	ctx := logging.WithLogger(context.Background(), logger)
//	ctx = logging.WithRunID(ctx, logging.NewRunID())
//	logging.WithRunIDField(ctx, logging.FromContext(ctx)).Info("seeded graph")
package logging
