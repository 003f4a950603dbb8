// internal/monitoring/metrics.go

// Package monitoring exposes Prometheus metrics for a harvest run and an
// optional HTTP endpoint serving them.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters maintained during one harvest run.
type Metrics struct {
	// PagesFetched counts successfully fetched and parsed pages.
	PagesFetched prometheus.Counter

	// RecordsExtracted counts candidate records produced by extraction.
	RecordsExtracted prometheus.Counter

	// RecordsAdmitted counts records admitted to the aggregator.
	RecordsAdmitted prometheus.Counter

	// RecordsFiltered counts records rejected by the admission predicate.
	RecordsFiltered prometheus.Counter

	// ItemErrors counts malformed catalog items skipped during extraction.
	ItemErrors prometheus.Counter

	// EntityErrors counts directory entities dropped during enrichment.
	EntityErrors prometheus.Counter
}

// NewMetrics creates the harvest counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PagesFetched: factory.NewCounter(prometheus.CounterOpts{
			Name: "harvester_pages_fetched_total",
			Help: "Total number of pages fetched and parsed",
		}),
		RecordsExtracted: factory.NewCounter(prometheus.CounterOpts{
			Name: "harvester_records_extracted_total",
			Help: "Total number of candidate records extracted from pages",
		}),
		RecordsAdmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "harvester_records_admitted_total",
			Help: "Total number of records admitted to the aggregator",
		}),
		RecordsFiltered: factory.NewCounter(prometheus.CounterOpts{
			Name: "harvester_records_filtered_total",
			Help: "Total number of records rejected by the admission predicate",
		}),
		ItemErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "harvester_item_errors_total",
			Help: "Total number of malformed catalog items skipped",
		}),
		EntityErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "harvester_entity_errors_total",
			Help: "Total number of directory entities dropped during enrichment",
		}),
	}
}
