package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric exported by this package.
const Namespace = "byline"

// Graph metrics track the size of the relationship graph
var (
	// AuthorsTotal tracks the number of registered authors
	AuthorsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "authors_total",
			Help:      "Number of authors in the registry",
		},
	)

	// MagazinesTotal tracks the number of registered magazines
	MagazinesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "magazines_total",
			Help:      "Number of magazines in the registry",
		},
	)

	// ArticlesTotal tracks the number of registered articles
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "articles_total",
			Help:      "Number of articles in the registry",
		},
	)
)

// Operation metrics track catalog calls
var (
	// OperationsTotal counts catalog operations by name and outcome
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of catalog operations",
		},
		[]string{"operation", "status"},
	)

	// OperationDuration measures catalog operation latency in seconds
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Catalog operation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
		},
		[]string{"operation"},
	)

	// ValidationErrorsTotal counts rejected inputs by field and error kind
	ValidationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "validation_errors_total",
			Help:      "Total number of rejected entity inputs",
		},
		[]string{"operation", "field", "kind"},
	)
)
