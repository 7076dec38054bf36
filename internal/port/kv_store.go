package port

import "context"

// KVStore is the key-value persistence collaborator for free-form
// application state (the CMA report grid). Core logic takes this as a
// dependency and never touches storage directly.
type KVStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
