// Package pipeline turns registry dates into parsed daily records: it
// locates each release, assembles its record and caches both.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/ppiankov/lacph/internal/cache"
	"github.com/ppiankov/lacph/internal/extract"
	"github.com/ppiankov/lacph/internal/model"
	"github.com/ppiankov/lacph/internal/registry"
	"github.com/ppiankov/lacph/internal/worker"
)

// Cache directories under the configured cache dir
const (
	DocumentDir = "cached-daily-pr"
	RecordDir   = "parsed-daily-pr"
	SnapshotDir = "snapshots"
)

// Options overrides the collaborators NewPipeline would build from config
type Options struct {
	Registry *registry.Registry
	Fetcher  Fetcher
	Extract  *extract.Config
	// Refresh skips cache reads; results are still written
	Refresh bool
	Logger  *slog.Logger
}

// Pipeline orchestrates locating, assembling and caching records
type Pipeline struct {
	registry  *registry.Registry
	locator   *Locator
	assembler *extract.Assembler
	records   *cache.RecordCache
	snapshots *cache.SnapshotCache // nil when snapshots are disabled
	refresh   bool
	workers   int
	closer    io.Closer
	logger    *slog.Logger
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config, opts Options) (*Pipeline, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = NewFetcher(cfg.HTTP, cfg.RateLimiting, logger)
	}

	extractCfg := extract.DefaultConfig()
	if opts.Extract != nil {
		extractCfg = *opts.Extract
	}

	stores, err := openStores(cfg.Cache)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		registry:  reg,
		assembler: extract.NewAssembler(extractCfg),
		records:   cache.NewRecordCache(stores.records, logger),
		refresh:   opts.Refresh,
		workers:   cfg.Concurrency.Workers,
		closer:    stores.closer,
		logger:    logger,
	}
	p.locator = NewLocator(reg, fetcher, cache.NewDocumentCache(stores.documents, logger), opts.Refresh, logger)
	if cfg.Cache.Snapshot {
		p.snapshots = cache.NewSnapshotCache(stores.snapshots, p.matchesRegistry, logger)
	}
	return p, nil
}

// Close releases the cache backend
func (p *Pipeline) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// Registry returns the registry the pipeline queries
func (p *Pipeline) Registry() *registry.Registry {
	return p.registry
}

// QueryDate returns the record of one release date. Hard failures are
// returned and nothing is cached for the date.
func (p *Pipeline) QueryDate(ctx context.Context, date model.Date) (*model.DailyRecord, error) {
	if !p.refresh {
		return p.records.GetOrCompute(ctx, date, p.build)
	}

	rec, err := p.build(ctx, date)
	if err != nil {
		return nil, err
	}
	if err := p.records.Put(date, rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func (p *Pipeline) build(ctx context.Context, date model.Date) (*model.DailyRecord, error) {
	raw, err := p.locator.Locate(ctx, date)
	if err != nil {
		return nil, err
	}

	rec, err := p.assembler.Assemble(raw, date)
	if err != nil {
		p.locator.Discard(date)
		return nil, fmt.Errorf("assemble %s: %w", date, err)
	}
	p.logger.Info("parsed press release", "date", date, "areas", len(rec.CasesByArea))
	return rec, nil
}

// QueryAll returns the record of every registered date in ascending order.
// A cached snapshot is returned as is; otherwise every date is queried and
// the first hard failure aborts the batch.
func (p *Pipeline) QueryAll(ctx context.Context) ([]model.DailyRecord, error) {
	if p.snapshots != nil && !p.refresh {
		if records, ok := p.snapshots.Get(cache.SnapshotKey); ok {
			return records, nil
		}
	}

	results := p.run(ctx, p.registry.Dates(), true)
	if err := firstFailure(results); err != nil {
		return nil, err
	}

	records := recordsOf(results)
	if err := p.storeSnapshot(records); err != nil {
		return records, err
	}
	return records, nil
}

// Collect queries every registered date, continuing past failures. It
// returns one result per date in registry order and stores the snapshot
// only when every date succeeded.
func (p *Pipeline) Collect(ctx context.Context) []*worker.DateResult {
	results := p.run(ctx, p.registry.Dates(), false)
	if worker.FirstError(results) != nil {
		return results
	}

	if err := p.storeSnapshot(recordsOf(results)); err != nil {
		p.logger.Warn("snapshot not stored", "error", err)
	}
	return results
}

func (p *Pipeline) storeSnapshot(records []model.DailyRecord) error {
	if p.snapshots == nil {
		return nil
	}
	if err := p.snapshots.Put(cache.SnapshotKey, records); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

// run queries dates sequentially or over the worker pool. With
// stopOnError the batch ends at the first failure.
func (p *Pipeline) run(ctx context.Context, dates []model.Date, stopOnError bool) []*worker.DateResult {
	if p.workers <= 1 {
		results := make([]*worker.DateResult, 0, len(dates))
		for i, date := range dates {
			rec, err := p.QueryDate(ctx, date)
			results = append(results, &worker.DateResult{Index: i, Date: date, Record: rec, Error: err})
			if err != nil && stopOnError {
				break
			}
		}
		return results
	}

	var querier worker.Querier = p
	if stopOnError {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		querier = &abortingQuerier{next: p, cancel: cancel}
	}
	return worker.NewBatchProcessor(querier, p.workers).ProcessDates(ctx, dates)
}

// abortingQuerier cancels the batch on the first failure
type abortingQuerier struct {
	next   worker.Querier
	cancel context.CancelFunc
}

func (q *abortingQuerier) QueryDate(ctx context.Context, date model.Date) (*model.DailyRecord, error) {
	rec, err := q.next.QueryDate(ctx, date)
	if err != nil {
		q.cancel()
	}
	return rec, err
}

// firstFailure returns the earliest error that is not a cancellation
// triggered by another failure
func firstFailure(results []*worker.DateResult) error {
	for _, r := range results {
		if r.Error != nil && !errors.Is(r.Error, context.Canceled) {
			return r.Error
		}
	}
	return worker.FirstError(results)
}

func recordsOf(results []*worker.DateResult) []model.DailyRecord {
	records := make([]model.DailyRecord, 0, len(results))
	for _, r := range results {
		if r.Record != nil {
			records = append(records, *r.Record)
		}
	}
	return records
}

// matchesRegistry rejects snapshots taken against a different set of dates
func (p *Pipeline) matchesRegistry(records []model.DailyRecord) error {
	dates := p.registry.Dates()
	if len(records) != len(dates) {
		return fmt.Errorf("snapshot holds %d records, registry has %d dates", len(records), len(dates))
	}
	for i, rec := range records {
		if rec.Date != dates[i] {
			return fmt.Errorf("snapshot record %d is %s, want %s", i, rec.Date, dates[i])
		}
	}
	return nil
}

type storeSet struct {
	documents cache.Cache
	records   cache.Cache
	snapshots cache.Cache
	closer    io.Closer
}

// openStores builds the byte stores for each cache layer
func openStores(cfg model.CacheConfig) (*storeSet, error) {
	var s storeSet

	switch {
	case !cfg.Enabled:
		s.documents = cache.NewMemoryCache()
		s.records = cache.NewMemoryCache()
		s.snapshots = cache.NewMemoryCache()
		return &s, nil

	case cfg.Backend == model.BackendSQLite:
		db, err := cache.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
		s.documents = db.Namespace(DocumentDir)
		s.records = db.Namespace(RecordDir)
		s.snapshots = db.Namespace(SnapshotDir)
		s.closer = db

	case cfg.Backend == model.BackendDisk || cfg.Backend == "":
		s.documents = cache.NewDiskCache(filepath.Join(cfg.Dir, DocumentDir), "html")
		s.records = cache.NewDiskCache(filepath.Join(cfg.Dir, RecordDir), "yaml")
		s.snapshots = cache.NewDiskCache(filepath.Join(cfg.Dir, SnapshotDir), "yaml")

	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}

	if cfg.Memory {
		s.documents = cache.NewLayeredCache(s.documents)
		s.records = cache.NewLayeredCache(s.records)
		s.snapshots = cache.NewLayeredCache(s.snapshots)
	}
	return &s, nil
}
