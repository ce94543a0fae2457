package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ppiankov/lacph/internal/cache"
	"github.com/ppiankov/lacph/internal/model"
	"github.com/ppiankov/lacph/internal/registry"
)

// Locator returns the raw release of a date, from the document cache when
// present and from the network otherwise
type Locator struct {
	registry  *registry.Registry
	fetcher   Fetcher
	documents *cache.DocumentCache
	refresh   bool
	logger    *slog.Logger
}

// NewLocator creates a locator. With refresh set the cache is never read,
// but fetched documents are still written to it.
func NewLocator(reg *registry.Registry, fetcher Fetcher, documents *cache.DocumentCache, refresh bool, logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Locator{
		registry:  reg,
		fetcher:   fetcher,
		documents: documents,
		refresh:   refresh,
		logger:    logger,
	}
}

// Locate returns the raw HTML published for date
func (l *Locator) Locate(ctx context.Context, date model.Date) ([]byte, error) {
	if !l.refresh {
		if raw, ok := l.documents.Get(date); ok {
			return raw, nil
		}
	}

	prid, err := l.registry.MustLookup(date)
	if err != nil {
		return nil, err
	}

	raw, err := l.fetcher.Fetch(ctx, prid)
	if err != nil {
		return nil, err
	}

	if err := l.documents.Put(date, raw); err != nil {
		return nil, fmt.Errorf("cache release %s: %w", date, err)
	}
	l.logger.Debug("cached press release", "date", date, "prid", prid, "bytes", len(raw))
	return raw, nil
}

// Discard drops the cached release of date, used when the document is
// rejected by the assembler
func (l *Locator) Discard(date model.Date) {
	if err := l.documents.Delete(date); err != nil {
		l.logger.Warn("discard cached release", "date", date, "error", err)
	}
}
