// Package kv defines the minimal key-value capability the cart and wishlist
// state managers persist through, so the core can run against Redis in
// production and an in-memory substitute in tests.
package kv

import "context"

// Store reads and writes string values under string keys. Get reports whether
// the key was present; a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
