// Package tracing provides OpenTelemetry tracing integration.
//
// Catalog operations open a span per call through StartSpan. Spans go
// nowhere until Setup installs a provider; the CLI does so when tracing is
// enabled, exporting spans as JSON to stderr.
//
// Example usage:
//
//	shutdown, err := tracing.Setup(true, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.StartSpan(ctx, "catalog.add_article")
//	defer span.End()
package tracing
