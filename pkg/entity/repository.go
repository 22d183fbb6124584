package entity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adfharrison1/go-voyage/pkg/domain"
)

// Repository is a typed view of a Collection. T must round-trip through
// encoding/json using the stored field names.
type Repository[T any] struct {
	coll *Collection
}

// NewRepository wraps coll.
func NewRepository[T any](coll *Collection) *Repository[T] {
	return &Repository[T]{coll: coll}
}

// Collection returns the untyped collection.
func (r *Repository[T]) Collection() *Collection {
	return r.coll
}

// Create stores v. Its id and created_date are assigned by the collection.
func (r *Repository[T]) Create(ctx context.Context, v T) (T, error) {
	var zero T
	fields, err := ToRecord(v)
	if err != nil {
		return zero, err
	}
	delete(fields, domain.FieldID)
	delete(fields, domain.FieldCreatedDate)

	rec, err := r.coll.Create(ctx, fields)
	if err != nil {
		return zero, err
	}
	return FromRecord[T](rec)
}

func (r *Repository[T]) List(ctx context.Context, sortBy string) ([]T, error) {
	recs, err := r.coll.List(ctx, sortBy)
	if err != nil {
		return nil, err
	}
	return fromRecords[T](recs)
}

func (r *Repository[T]) Filter(ctx context.Context, criteria map[string]interface{}) ([]T, error) {
	recs, err := r.coll.Filter(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return fromRecords[T](recs)
}

func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	rec, err := r.coll.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	return FromRecord[T](rec)
}

// Update merges fields into the stored record, so only the named fields change.
func (r *Repository[T]) Update(ctx context.Context, id string, fields map[string]interface{}) (T, error) {
	var zero T
	rec, err := r.coll.Update(ctx, id, fields)
	if err != nil {
		return zero, err
	}
	return FromRecord[T](rec)
}

// UpdateFunc decodes the stored record, lets fn change it and writes the
// result back under the collection lock. Fields T does not model are kept,
// and the record keeps its id and created_date.
func (r *Repository[T]) UpdateFunc(ctx context.Context, id string, fn func(*T) error) (T, error) {
	var zero T
	rec, err := r.coll.Modify(ctx, id, func(rec domain.Record) (domain.Record, error) {
		v, err := FromRecord[T](rec)
		if err != nil {
			return nil, err
		}
		if err := fn(&v); err != nil {
			return nil, err
		}
		fields, err := ToRecord(v)
		if err != nil {
			return nil, err
		}
		delete(fields, domain.FieldID)
		delete(fields, domain.FieldCreatedDate)
		for k, val := range fields {
			rec[k] = val
		}
		return rec, nil
	})
	if err != nil {
		return zero, err
	}
	return FromRecord[T](rec)
}

func (r *Repository[T]) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	return r.coll.Delete(ctx, id)
}

// ToRecord converts a struct to its stored field map.
func ToRecord(v interface{}) (domain.Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}
	var rec domain.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode %T as record: %w", v, err)
	}
	return rec, nil
}

// FromRecord converts a stored record to T.
func FromRecord[T any](rec domain.Record) (T, error) {
	var out T
	data, err := json.Marshal(rec)
	if err != nil {
		return out, fmt.Errorf("failed to encode record: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode record %s as %T: %w", rec.ID(), out, err)
	}
	return out, nil
}

func fromRecords[T any](recs []domain.Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		v, err := FromRecord[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
