// Package observability groups the logging, metrics and tracing used by the
// catalog service and the CLI.
//
// Subpackages:
//   - logging: slog construction, run IDs and context propagation
//   - metrics: Prometheus graph gauges and operation counters
//   - tracing: OpenTelemetry spans, exported to stderr when enabled
//
// Example usage:
//
//	import (
//	    "byline/internal/observability/logging"
//	    "byline/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.New(os.Stderr, logging.FormatText, slog.LevelInfo)
//	    logger.Info("application started")
//
//	    metrics.UpdateGraphSize(2, 2, 4)
//	}
package observability
