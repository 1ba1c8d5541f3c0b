package uid

import (
	"sort"
	"sync"
	"sync/atomic"

	dicomerr "github.com/caio-sobreiro/dicomcatalog/errors"
)

// Registry maps UID strings to their entries. Built-in catalogs register
// during construction; afterwards the registry is read-only in practice and
// lookups from many goroutines are safe.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Identified
	sealed  atomic.Bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Identified),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry shared by the default catalogs.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register inserts or overwrites the entry keyed by its UID string.
func (r *Registry) Register(entry Identified) error {
	if r.sealed.Load() {
		return dicomerr.ErrSealed
	}
	if entry == nil || entry.UID() == "" {
		return dicomerr.NewUIDError("", "empty UID cannot be registered")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.UID()] = entry
	return nil
}

// Lookup returns the registered entry for value, or a fresh placeholder when
// nothing is registered under it. It never fails and never caches
// placeholders.
func (r *Registry) Lookup(value string) Identified {
	if entry, ok := r.Get(value); ok {
		return entry
	}
	return Placeholder(value)
}

// Get returns the registered entry for value, if any.
func (r *Registry) Get(value string) (Identified, bool) {
	r.mu.RLock()
	entry, ok := r.entries[value]
	r.mu.RUnlock()
	return entry, ok
}

// Seal prevents further registrations. It returns true if this call sealed
// the registry.
func (r *Registry) Seal() bool { return !r.sealed.Swap(true) }

// Sealed reports whether the registry accepts registrations.
func (r *Registry) Sealed() bool { return r.sealed.Load() }

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns a snapshot of all entries ordered by UID string.
func (r *Registry) Entries() []Identified {
	r.mu.RLock()
	items := make([]Identified, 0, len(r.entries))
	for _, e := range r.entries {
		items = append(items, e)
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		return items[i].UID() < items[j].UID()
	})
	return items
}
