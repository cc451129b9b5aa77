package storage

import "context"

// KV is the port to the local key-value store holding the persisted
// application state. Implementations are single-user local stores; no
// cross-process locking is provided.
type KV interface {
	// Get returns the value stored under key and whether the key was
	// present. A missing key is not an error.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key if present.
	Delete(ctx context.Context, key string) error
	// Close releases underlying resources.
	Close() error
}
