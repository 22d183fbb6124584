package domain

import "errors"

var (
	// ErrNotFound is returned when a record id does not exist in a collection.
	ErrNotFound = errors.New("item not found")

	// ErrCorruptCollection is returned when a persisted collection blob cannot be decoded.
	ErrCorruptCollection = errors.New("corrupt collection data")

	// ErrUnknownEntity is returned when a collection name is not registered.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrInvalidExpense is returned for unknown expense categories or non-positive amounts.
	ErrInvalidExpense = errors.New("invalid expense")
)
