package entity

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator returns a new record id for the named collection.
type IDGenerator func(collection string) string

// UUIDGenerator returns random UUIDv4 ids.
func UUIDGenerator() IDGenerator {
	return func(string) string {
		return uuid.NewString()
	}
}

// CounterGenerator returns ids from a monotonically increasing counter per collection.
func CounterGenerator() IDGenerator {
	var mu sync.Mutex
	counters := make(map[string]*int64)
	return func(collection string) string {
		mu.Lock()
		counter, ok := counters[collection]
		if !ok {
			counter = new(int64)
			counters[collection] = counter
		}
		mu.Unlock()
		return strconv.FormatInt(atomic.AddInt64(counter, 1), 10)
	}
}
