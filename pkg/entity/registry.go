// Package entity implements named record collections over a domain.KVStore.
// Each collection is persisted as one JSON array under prefix+name.
package entity

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/adfharrison1/go-voyage/pkg/domain"
)

// DefaultPrefix is prepended to collection names to form storage keys.
const DefaultPrefix = "voyage_"

// TimeFormat is the created_date layout: ISO-8601 UTC with milliseconds.
const TimeFormat = "2006-01-02T15:04:05.000Z"

type Option func(*Registry)

// WithPrefix sets the storage key prefix.
func WithPrefix(prefix string) Option {
	return func(r *Registry) {
		r.prefix = prefix
	}
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(r *Registry) {
		r.newID = gen
	}
}

// WithClock sets the time source for created_date.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// collectionLock serializes read-modify-write cycles on one storage key
type collectionLock struct {
	mu sync.RWMutex
}

// Registry owns the collections built on one store. Collections obtained from
// the same registry share per-key locks.
type Registry struct {
	store  domain.KVStore
	prefix string
	newID  IDGenerator
	now    func() time.Time

	mu          sync.RWMutex
	collections map[string]*Collection
	locks       map[string]*collectionLock
}

// NewRegistry creates a registry over store
func NewRegistry(store domain.KVStore, options ...Option) *Registry {
	r := &Registry{
		store:       store,
		prefix:      DefaultPrefix,
		newID:       UUIDGenerator(),
		now:         time.Now,
		collections: make(map[string]*Collection),
		locks:       make(map[string]*collectionLock),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Store returns the underlying key-value store.
func (r *Registry) Store() domain.KVStore {
	return r.store
}

// Register returns the collection called name, creating it on first use.
func (r *Registry) Register(name string) *Collection {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.collections[name]; ok {
		return c
	}
	key := r.prefix + name
	lock, ok := r.locks[key]
	if !ok {
		lock = &collectionLock{}
		r.locks[key] = lock
	}
	c := &Collection{name: name, key: key, reg: r, lock: lock}
	r.collections[name] = c
	return c
}

// Get returns a registered collection.
func (r *Registry) Get(name string) (*Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEntity, name)
	}
	return c, nil
}

// Names returns the registered collection names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.collections))
	for name := range r.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lockAll write-locks every known collection, for store-wide operations.
func (r *Registry) lockAll() func() {
	r.mu.RLock()
	locks := make([]*collectionLock, 0, len(r.locks))
	keys := make([]string, 0, len(r.locks))
	for k := range r.locks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		locks = append(locks, r.locks[k])
	}
	r.mu.RUnlock()

	for _, l := range locks {
		l.mu.Lock()
	}
	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].mu.Unlock()
		}
	}
}

// WithAllLocked runs fn while no collection operation is in flight.
func (r *Registry) WithAllLocked(fn func() error) error {
	unlock := r.lockAll()
	defer unlock()
	return fn()
}
