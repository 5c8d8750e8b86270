// Package metrics provides Prometheus collectors and recording helpers for the
// author/magazine/article graph.
//
// This package centralizes:
//   - Graph size gauges (authors, magazines, articles)
//   - Operation counters and latency histograms
//   - Validation failure counters by field and error kind
//
// All metrics are registered with the Prometheus default registry.
//
// Example usage:
//
//	start := time.Now()
//	_, err := author.AddArticle(mag, title)
//	metrics.RecordOperation("add_article", time.Since(start), err)
package metrics
