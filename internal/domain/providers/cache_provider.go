package providers

import (
	"context"
)

// CacheProvider defines the interface for keyed byte storage with
// expiration. It backs the refresh-token session store.
type CacheProvider interface {
	// Get retrieves a value
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with expiration
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value
	Delete(ctx context.Context, key string) error

	// Exists checks if a key exists
	Exists(ctx context.Context, key string) (bool, error)
}
