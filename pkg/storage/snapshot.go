package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// SnapshotStore keeps every key in memory and persists the whole key space to a
// single snapshot file.
type SnapshotStore struct {
	mem      *MemoryStore
	filename string

	saveMu sync.Mutex
	dirty  bool

	backgroundSave  bool
	transactionSave bool
	saveInterval    time.Duration

	backgroundWg sync.WaitGroup
	stopChan     chan struct{}
}

// NewSnapshotStore opens (or creates) the snapshot file and loads its entries.
func NewSnapshotStore(filename string, options ...StorageOption) (*SnapshotStore, error) {
	s := &SnapshotStore{
		mem:             NewMemoryStore(),
		filename:        filename,
		transactionSave: true,
		saveInterval:    5 * time.Minute,
		stopChan:        make(chan struct{}),
	}
	for _, option := range options {
		option(s)
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	s.StartBackgroundWorkers()
	return s, nil
}

// load reads the snapshot file. A missing file is an empty store.
func (s *SnapshotStore) load() error {
	file, err := os.Open(s.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := ReadSnapshot(file)
	if err != nil {
		return fmt.Errorf("failed to load snapshot %s: %w", s.filename, err)
	}
	s.mem.load(data.Entries)
	log.Infof("loaded %d keys from %s", len(data.Entries), s.filename)
	return nil
}

// Save writes the current key space to disk via a temp file and rename.
func (s *SnapshotStore) Save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.saveLocked()
}

func (s *SnapshotStore) saveIfDirty() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if !s.dirty {
		return nil
	}
	return s.saveLocked()
}

func (s *SnapshotStore) saveLocked() error {
	data := NewSnapshotData()
	data.Entries = s.mem.snapshot()
	data.Metadata["saved_at"] = time.Now().UTC().Format(time.RFC3339)

	if dir := filepath.Dir(s.filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	tmp := s.filename + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WriteSnapshot(file, data); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmp, s.filename); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	s.dirty = false
	return nil
}

// write applies mutate and, when transaction saves are on, persists the result.
// A failed save runs the returned undo so memory never runs ahead of disk.
func (s *SnapshotStore) write(mutate func() (undo func())) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	wasDirty := s.dirty
	undo := mutate()
	s.dirty = true
	if !s.transactionSave {
		return nil
	}
	if err := s.saveLocked(); err != nil {
		undo()
		s.dirty = wasDirty
		return err
	}
	return nil
}

func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.mem.Get(ctx, key)
}

func (s *SnapshotStore) Set(ctx context.Context, key string, value []byte) error {
	return s.write(func() func() {
		restore := s.restoreKey(ctx, key)
		s.mem.Set(ctx, key, value)
		return restore
	})
}

func (s *SnapshotStore) Remove(ctx context.Context, key string) error {
	return s.write(func() func() {
		restore := s.restoreKey(ctx, key)
		s.mem.Remove(ctx, key)
		return restore
	})
}

func (s *SnapshotStore) Clear(ctx context.Context) error {
	return s.write(func() func() {
		prev := s.mem.snapshot()
		s.mem.Clear(ctx)
		return func() { s.mem.load(prev) }
	})
}

// restoreKey captures key's current value and returns a func that puts it back.
func (s *SnapshotStore) restoreKey(ctx context.Context, key string) func() {
	prev, ok, _ := s.mem.Get(ctx, key)
	return func() {
		if ok {
			s.mem.Set(ctx, key, prev)
		} else {
			s.mem.Remove(ctx, key)
		}
	}
}

// Close stops background workers and flushes unsaved changes.
func (s *SnapshotStore) Close() error {
	s.StopBackgroundWorkers()
	return s.saveIfDirty()
}
