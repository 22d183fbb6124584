package domain

import "context"

// KVStore is the persistent key-value capability collections are built on.
// Values are opaque byte blobs; a missing key is reported with ok == false.
type KVStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	// Clear removes every key held by the store.
	Clear(ctx context.Context) error
	Close() error
}
