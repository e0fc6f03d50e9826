// Package memory durable byte regions the counter and the record index live in
package memory

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("memory: key not found")
	ErrClosed   = errors.New("memory: closed")
	ErrCorrupt  = errors.New("memory: data corruption detected")
)

// Memory keyed durable storage split into isolated regions.
// A successful Store or Delete survives a restart of the process
// (for Snapshot with a flush interval, after the next Flush).
type Memory interface {
	// Load returns a copy of the value or ErrNotFound
	Load(key Key) ([]byte, error)
	// Store writes value under key, overwriting the previous one
	Store(key Key, value []byte) error
	// Delete removes key, deleting a missing key is not an error
	Delete(key Key) error
	// Scan calls fn for every key of the region in ascending key order.
	// A non-nil error returned by fn stops the scan and is returned.
	Scan(region Region, fn func(key Key, value []byte) error) error
	Close() error
}

// Flusher is implemented by backends which buffer writes in memory
type Flusher interface {
	Flush(ctx context.Context) error
}
