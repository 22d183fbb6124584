package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// PebbleStore implements domain.KVStore on Pebble
type PebbleStore struct {
	pdb *pebble.DB
}

// NewPebbleStore opens a Pebble database in dir.
func NewPebbleStore(dir string, opts *pebble.Options) (*PebbleStore, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("open pebble %s: %w", dir, err)
	}
	return &PebbleStore{pdb: db}, nil
}

func (p *PebbleStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, closer, err := p.pdb.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("pebble get %s: %w", key, err)
	}
	defer closer.Close()
	return append([]byte(nil), v...), true, nil
}

func (p *PebbleStore) Set(_ context.Context, key string, value []byte) error {
	if err := p.pdb.Set([]byte(key), value, pebble.Sync); err != nil {
		return fmt.Errorf("pebble set %s: %w", key, err)
	}
	return nil
}

func (p *PebbleStore) Remove(_ context.Context, key string) error {
	if err := p.pdb.Delete([]byte(key), pebble.Sync); err != nil {
		return fmt.Errorf("pebble delete %s: %w", key, err)
	}
	return nil
}

func (p *PebbleStore) Clear(_ context.Context) error {
	iter := p.pdb.NewIter(&pebble.IterOptions{})
	batch := p.pdb.NewBatch()
	for iter.First(); iter.Valid(); iter.Next() {
		if err := batch.Delete(append([]byte(nil), iter.Key()...), nil); err != nil {
			iter.Close()
			batch.Close()
			return fmt.Errorf("pebble clear: %w", err)
		}
	}
	if err := iter.Close(); err != nil {
		batch.Close()
		return fmt.Errorf("pebble clear: %w", err)
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("pebble clear: %w", err)
	}
	return nil
}

func (p *PebbleStore) Close() error {
	return p.pdb.Close()
}
