package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/adfharrison1/go-voyage/pkg/domain"
)

// Supported storage drivers
const (
	DriverMemory   = "memory"
	DriverSnapshot = "snapshot"
	DriverBadger   = "badger"
	DriverPebble   = "pebble"
	DriverSQLite   = "sqlite"
)

// Open creates a KVStore for driver. path is a file for snapshot and sqlite,
// a directory for badger and pebble, and ignored for memory.
func Open(ctx context.Context, driver, path string, options ...StorageOption) (domain.KVStore, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverSnapshot:
		if filepath.Ext(path) == "" {
			path += FileExtension
		}
		return NewSnapshotStore(path, options...)
	case DriverBadger:
		return NewBadgerStore(path)
	case DriverPebble:
		return NewPebbleStore(path, nil)
	case DriverSQLite:
		return NewSQLiteStore(ctx, path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
