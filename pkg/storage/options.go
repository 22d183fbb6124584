package storage

import "time"

type StorageOption func(*SnapshotStore)

// WithBackgroundSave saves dirty state every interval instead of after every write.
func WithBackgroundSave(interval time.Duration) StorageOption {
	return func(store *SnapshotStore) {
		store.backgroundSave = true
		store.saveInterval = interval
		store.transactionSave = false // Disable transaction saves when background saves are enabled
	}
}

// WithTransactionSave enables saving after every write (default: true)
func WithTransactionSave(enabled bool) StorageOption {
	return func(store *SnapshotStore) {
		store.transactionSave = enabled
	}
}
