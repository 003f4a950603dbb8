// internal/harvest/aggregator.go
package harvest

import (
	"sync"

	"github.com/valeran/harvester/internal/record"
)

// Aggregator is the shared ordered collection that accumulates admitted
// records. Admit is safe for concurrent use from any number of workers; the
// interleaving across workers is unspecified, but every admitted record
// appears exactly once. It is the only mutable state workers share.
type Aggregator struct {
	mu      sync.Mutex
	records []record.Record
}

// NewAggregator creates an empty aggregator for one harvest run.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Admit appends the record to the shared sequence.
func (a *Aggregator) Admit(rec record.Record) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, rec)
}

// Len returns the number of records admitted so far.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.records)
}

// Drain returns the accumulated sequence. It must be called once, after
// every producing worker has joined; the aggregator is not reused afterward.
func (a *Aggregator) Drain() []record.Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	records := a.records
	a.records = nil
	return records
}
