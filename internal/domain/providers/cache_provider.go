package providers

import "context"

// CacheProvider is the caching interface used for derived-index and HTTP
// response caching. Implementations must treat cached data as fully
// reconstructible: a miss or an error always degrades to recompute.
type CacheProvider interface {
	// Get retrieves a value from cache; an error means miss or failure.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with an expiration in seconds.
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value from cache.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
