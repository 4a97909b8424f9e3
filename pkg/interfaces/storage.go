package interfaces

import "context"

// KeyValueStore is a small durable string store used for user preferences.
// Implementations must report failures as errors and never panic across the boundary.
type KeyValueStore interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
}
