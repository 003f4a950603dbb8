// internal/harvest/engine.go
package harvest

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/valeran/harvester/internal/fetch"
	"github.com/valeran/harvester/internal/monitoring"
	"github.com/valeran/harvester/internal/record"
)

// DefaultConcurrency is the catalog-mode worker pool size.
const DefaultConcurrency = 4

// Engine drives one harvest run: it owns the pagination loop, feeds pages
// through fetch, extraction and filtering, and accumulates admitted records
// in a shared aggregator. A run goes to completion or fails fatally; there
// is no mechanism to abort in-flight work early.
type Engine struct {
	fetcher *fetch.Fetcher
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

// NewEngine creates an engine. A nil logger or metrics is replaced with a
// no-op implementation.
func NewEngine(fetcher *fetch.Fetcher, logger *zap.Logger, metrics *monitoring.Metrics) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = monitoring.NewMetrics(prometheus.NewRegistry())
	}

	return &Engine{
		fetcher: fetcher,
		logger:  logger,
		metrics: metrics,
	}
}

// HarvestCatalog runs the catalog pipeline: a fixed-size worker pool pulls
// page descriptors from the set and runs fetch, extract, filter and admit per
// descriptor. Workers share nothing but the aggregator. A transport or decode
// failure is fatal to the run and no records are returned; a malformed item
// is logged and skipped without disturbing its siblings.
func (e *Engine) HarvestCatalog(ctx context.Context, pages *PageSet, extractor *ListExtractor, admit Predicate, concurrency int) ([]record.Record, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	agg := NewAggregator()
	jobs := make(chan string)

	var wg sync.WaitGroup
	var once sync.Once
	var fatal error

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for url := range jobs {
				if err := e.harvestCatalogPage(ctx, url, extractor, admit, agg); err != nil {
					once.Do(func() { fatal = err })
				}
			}
		}()
	}

	for _, url := range pages.URLs() {
		jobs <- url
	}
	close(jobs)
	wg.Wait()

	if fatal != nil {
		return nil, fatal
	}
	return agg.Drain(), nil
}

func (e *Engine) harvestCatalogPage(ctx context.Context, url string, extractor *ListExtractor, admit Predicate, agg *Aggregator) error {
	doc, err := e.fetcher.Document(ctx, url)
	if err != nil {
		return err
	}
	e.metrics.PagesFetched.Inc()

	items, itemErrs := extractor.Extract(doc)
	for _, itemErr := range itemErrs {
		e.logger.Warn("skipping malformed catalog item",
			zap.String("page", url),
			zap.Error(itemErr),
		)
		e.metrics.ItemErrors.Inc()
	}

	for _, item := range items {
		e.metrics.RecordsExtracted.Inc()
		if !admit(item) {
			e.metrics.RecordsFiltered.Inc()
			continue
		}
		agg.Admit(item)
		e.metrics.RecordsAdmitted.Inc()
	}

	return nil
}

// HarvestDirectory runs the directory pipeline on a single control flow: the
// offset cursor walks listing pages, every public candidate is enriched with
// a per-entity fetch, and admitted organizations land in the aggregator. A
// listing fetch failure is fatal to the whole run; an enrichment failure or a
// missing entity field drops that entity only.
func (e *Engine) HarvestDirectory(ctx context.Context, endpoints Endpoints, startPage, pageSize int, admit Predicate) ([]record.Record, error) {
	agg := NewAggregator()
	cursor := NewOffsetCursor(startPage, pageSize)

	for !cursor.Done() {
		listingURL, err := endpoints.SearchURL(pageSize, cursor.Skip())
		if err != nil {
			return nil, err
		}

		var page listingPage
		if err := e.fetcher.JSON(ctx, listingURL, &page); err != nil {
			return nil, err
		}
		e.metrics.PagesFetched.Inc()

		for _, candidate := range page.Value {
			e.metrics.RecordsExtracted.Inc()
			if candidate.Visibility != VisibilityPublic {
				e.metrics.RecordsFiltered.Inc()
				continue
			}
			e.enrichAndAdmit(ctx, endpoints, candidate, admit, agg)
		}

		cursor.Advance(len(page.Value))
	}

	e.logger.Info("directory harvest complete",
		zap.Int("listing_fetches", cursor.Fetches()),
		zap.Int("admitted", agg.Len()),
	)

	return agg.Drain(), nil
}

// enrichAndAdmit fetches one entity document, normalizes it and admits it
// when the predicate allows. Failures here are scoped to the entity: the
// typed transport, decode or missing-field error is logged and the entity is
// dropped from the run.
func (e *Engine) enrichAndAdmit(ctx context.Context, endpoints Endpoints, candidate Candidate, admit Predicate, agg *Aggregator) {
	var doc map[string]interface{}
	if err := e.fetcher.JSON(ctx, endpoints.OrganizationURL(candidate.ID), &doc); err != nil {
		e.logger.Warn("dropping organization after failed enrichment",
			zap.String("key", candidate.ID),
			zap.Error(err),
		)
		e.metrics.EntityErrors.Inc()
		return
	}

	org, err := ExtractOrganization(doc)
	if err != nil {
		e.logger.Warn("dropping organization with incomplete document",
			zap.String("key", candidate.ID),
			zap.Error(err),
		)
		e.metrics.EntityErrors.Inc()
		return
	}

	if !admit(org) {
		e.metrics.RecordsFiltered.Inc()
		return
	}

	agg.Admit(org)
	e.metrics.RecordsAdmitted.Inc()
	e.logger.Info("admitted organization",
		zap.String("id", org.ID),
		zap.String("name", org.Name),
	)
}
