// Package cache persists raw press releases and parsed records.
//
// Byte-level stores (disk, memory, SQLite) implement Cache. ReadThrough layers
// typed values on top of a store, so the raw document, per-date record and
// bulk snapshot caches share one cache-or-compute path.
package cache

import (
	"fmt"

	"github.com/ppiankov/lacph/internal/model"
)

// Cache defines the interface for byte-level caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error
}

// Source tags every cache entry produced from this department's releases
const Source = "lacph"

// DateKey names the cache entry of a release date, e.g. "2020-04-04-lacph"
func DateKey(date model.Date) string {
	return fmt.Sprintf("%s-%s", date, Source)
}
