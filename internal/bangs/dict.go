// Package bangs holds the static bang dictionary: the immutable mapping
// from a trigger keyword (without "!") to its search URL template and home
// domain, loaded from the bundled DuckDuckGo-style dataset.
package bangs

import (
	"sync/atomic"

	"github.com/wajeht/bang/internal/domain"
)

// Dict is one immutable snapshot of the dictionary. Never mutated after
// build, safe to share across requests without locking.
type Dict struct {
	defs map[string]domain.BangDef
}

// NewDict builds a snapshot from a list of definitions. Later duplicates of
// the same trigger win, which lets local overrides shadow dataset entries.
func NewDict(defs []domain.BangDef) *Dict {
	m := make(map[string]domain.BangDef, len(defs))
	for _, d := range defs {
		m[d.Trigger] = d
	}
	return &Dict{defs: m}
}

// Lookup resolves a trigger body ("g" for "!g"). Case-sensitive.
func (d *Dict) Lookup(triggerBody string) (domain.BangDef, bool) {
	def, ok := d.defs[triggerBody]
	return def, ok
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.defs)
}

// Catalog is the process-wide handle to the current dictionary snapshot.
// Reads are lock-free; the reloader swaps in a fresh snapshot atomically.
type Catalog struct {
	current atomic.Pointer[Dict]
}

// NewCatalog starts with an empty snapshot so lookups are always safe.
func NewCatalog() *Catalog {
	c := &Catalog{}
	c.current.Store(NewDict(nil))
	return c
}

// Lookup resolves a trigger body against the current snapshot.
func (c *Catalog) Lookup(triggerBody string) (domain.BangDef, bool) {
	return c.current.Load().Lookup(triggerBody)
}

// Len returns the entry count of the current snapshot.
func (c *Catalog) Len() int {
	return c.current.Load().Len()
}

// Swap replaces the current snapshot.
func (c *Catalog) Swap(d *Dict) {
	c.current.Store(d)
}
