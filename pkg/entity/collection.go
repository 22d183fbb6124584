package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/adfharrison1/go-voyage/pkg/domain"
)

// SortNewestFirst is the List directive for descending created_date order.
const SortNewestFirst = "-created_date"

// maxIDAttempts bounds re-draws when a generated id is already taken.
const maxIDAttempts = 8

// Collection persists and queries the records of one named collection.
type Collection struct {
	name string
	key  string
	reg  *Registry
	lock *collectionLock
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// Key returns the storage key the collection is persisted under.
func (c *Collection) Key() string {
	return c.key
}

func (c *Collection) withReadLock(fn func() error) error {
	c.lock.mu.RLock()
	defer c.lock.mu.RUnlock()
	return fn()
}

func (c *Collection) withWriteLock(fn func() error) error {
	c.lock.mu.Lock()
	defer c.lock.mu.Unlock()
	return fn()
}

// load reads the collection blob. A missing blob is an empty collection.
func (c *Collection) load(ctx context.Context) ([]domain.Record, error) {
	data, ok, err := c.reg.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", c.name, err)
	}
	if !ok {
		return []domain.Record{}, nil
	}
	var items []domain.Record
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: collection %s: %v", domain.ErrCorruptCollection, c.name, err)
	}
	if items == nil {
		items = []domain.Record{}
	}
	return items, nil
}

// save rewrites the whole collection blob.
func (c *Collection) save(ctx context.Context, items []domain.Record) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.name, err)
	}
	if err := c.reg.store.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c.name, err)
	}
	return nil
}

// Create stores a new record built from fields plus a generated id and
// created_date, which take precedence over caller-supplied values.
func (c *Collection) Create(ctx context.Context, fields map[string]interface{}) (domain.Record, error) {
	var created domain.Record
	err := c.withWriteLock(func() error {
		items, err := c.load(ctx)
		if err != nil {
			return err
		}

		id, err := c.uniqueID(items)
		if err != nil {
			return err
		}

		rec := make(domain.Record, len(fields)+2)
		for k, v := range fields {
			rec[k] = v
		}
		rec[domain.FieldID] = id
		rec[domain.FieldCreatedDate] = c.reg.now().UTC().Format(TimeFormat)

		created, err = copyRecord(rec)
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		return c.save(ctx, append(items, created))
	})
	if err != nil {
		return nil, err
	}
	return created.Clone(), nil
}

func (c *Collection) uniqueID(items []domain.Record) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := c.reg.newID(c.name)
		if indexOf(items, id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique id for collection %s", c.name)
}

// List returns every record. With SortNewestFirst records are ordered by
// created_date descending; any other directive keeps storage order.
func (c *Collection) List(ctx context.Context, sortBy string) ([]domain.Record, error) {
	var items []domain.Record
	err := c.withReadLock(func() error {
		var err error
		items, err = c.load(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if sortBy == SortNewestFirst {
		sort.SliceStable(items, func(i, j int) bool {
			return createdAt(items[i]).After(createdAt(items[j]))
		})
	}
	return items, nil
}

// Filter returns the records whose fields loosely equal every criterion.
func (c *Collection) Filter(ctx context.Context, criteria map[string]interface{}) ([]domain.Record, error) {
	items, err := c.List(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, len(items))
	for _, rec := range items {
		if MatchesFilter(rec, criteria) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Get returns the record with the given id.
func (c *Collection) Get(ctx context.Context, id string) (domain.Record, error) {
	items, err := c.List(ctx, "")
	if err != nil {
		return nil, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return nil, notFound(c.name, id)
	}
	return items[i], nil
}

// Update shallow-merges fields into the record with the given id. Nothing is
// written when the id does not exist.
func (c *Collection) Update(ctx context.Context, id string, fields map[string]interface{}) (domain.Record, error) {
	return c.Modify(ctx, id, func(rec domain.Record) (domain.Record, error) {
		for k, v := range fields {
			rec[k] = v
		}
		return rec, nil
	})
}

// Modify loads the record with the given id, passes a copy to fn and stores
// the result, all under the collection's write lock. Nothing is written when
// the id does not exist or fn returns an error.
func (c *Collection) Modify(ctx context.Context, id string, fn func(domain.Record) (domain.Record, error)) (domain.Record, error) {
	var updated domain.Record
	err := c.withWriteLock(func() error {
		items, err := c.load(ctx)
		if err != nil {
			return err
		}
		i := indexOf(items, id)
		if i < 0 {
			return notFound(c.name, id)
		}

		merged, err := fn(items[i].Clone())
		if err != nil {
			return err
		}
		merged, err = copyRecord(merged)
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		items[i] = merged
		if err := c.save(ctx, items); err != nil {
			return err
		}
		updated = merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated.Clone(), nil
}

// Delete removes every record with the given id. Deleting a missing id still
// succeeds.
func (c *Collection) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	err := c.withWriteLock(func() error {
		items, err := c.load(ctx)
		if err != nil {
			return err
		}
		kept := items[:0]
		for _, rec := range items {
			if !rec.HasID(id) {
				kept = append(kept, rec)
			}
		}
		return c.save(ctx, kept)
	})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{Success: true}, nil
}

func notFound(collection, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, collection, id)
}

func indexOf(items []domain.Record, id string) int {
	for i, rec := range items {
		if rec.HasID(id) {
			return i
		}
	}
	return -1
}

// createdAt parses created_date; unparseable values sort as the zero time.
func createdAt(rec domain.Record) time.Time {
	t, err := time.Parse(time.RFC3339Nano, rec.CreatedDate())
	if err != nil {
		return time.Time{}
	}
	return t
}

// copyRecord returns a deep copy of rec with the value types a stored record
// decodes to.
func copyRecord(rec domain.Record) (domain.Record, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var out domain.Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
