// Package registry maps release dates to the identifiers the health department
// assigns to its daily press releases.
package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ppiankov/lacph/internal/model"
)

// ErrUnknownDate is returned when no release is registered for a date
var ErrUnknownDate = errors.New("no press release registered for date")

// Entry pairs a release date with its press release identifier
type Entry struct {
	Date model.Date
	PRID int
}

// Registry is an immutable date → PRID table
type Registry struct {
	byDate  map[model.Date]int
	entries []Entry
}

// Default returns the registry of every known daily briefing
func Default() *Registry {
	r, err := FromStrings(dailyStats)
	if err != nil {
		panic(fmt.Sprintf("registry: built-in table: %v", err))
	}
	return r
}

// New builds a registry from a date → PRID map
func New(table map[model.Date]int) *Registry {
	r := &Registry{
		byDate:  make(map[model.Date]int, len(table)),
		entries: make([]Entry, 0, len(table)),
	}
	for d, prid := range table {
		r.byDate[d] = prid
		r.entries = append(r.entries, Entry{Date: d, PRID: prid})
	}
	sort.Slice(r.entries, func(i, j int) bool {
		return r.entries[i].Date.Before(r.entries[j].Date)
	})
	return r
}

// FromStrings builds a registry from a YYYY-MM-DD → PRID map
func FromStrings(table map[string]int) (*Registry, error) {
	parsed := make(map[model.Date]int, len(table))
	for s, prid := range table {
		d, err := model.ParseDate(s)
		if err != nil {
			return nil, err
		}
		parsed[d] = prid
	}
	return New(parsed), nil
}

// Lookup returns the PRID published on date
func (r *Registry) Lookup(date model.Date) (int, bool) {
	prid, ok := r.byDate[date]
	return prid, ok
}

// MustLookup is Lookup returning ErrUnknownDate for absent dates
func (r *Registry) MustLookup(date model.Date) (int, error) {
	prid, ok := r.Lookup(date)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownDate, date)
	}
	return prid, nil
}

// Entries returns every entry in ascending date order
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Dates returns every registered date in ascending order
func (r *Registry) Dates() []model.Date {
	dates := make([]model.Date, len(r.entries))
	for i, e := range r.entries {
		dates[i] = e.Date
	}
	return dates
}

// Len returns the number of registered releases
func (r *Registry) Len() int {
	return len(r.entries)
}
