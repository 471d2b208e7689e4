package wishlist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/angelmondragon/bacola-storefront/pkg/kv"
)

// wishlistItemsKey is the storage key for the serialized identity list,
// scoped per session by the repository.
const wishlistItemsKey = "wishlist_items"

// Repository persists wishlist identities through the key-value capability.
type Repository struct {
	store kv.Store
}

// NewRepository binds the repository to a key-value store.
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Load reads the stored identity list for a session. A missing key yields an
// empty slice; unparsable stored data is returned as an error so the caller
// can discard it entirely.
func (r *Repository) Load(ctx context.Context, sessionID string) ([]string, error) {
	raw, ok, err := r.store.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, fmt.Errorf("read wishlist state: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, &CorruptStateError{cause: err}
	}
	return ids, nil
}

// Save re-serializes the full identity list after every mutation.
func (r *Repository) Save(ctx context.Context, sessionID string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode wishlist state: %w", err)
	}
	if err := r.store.Set(ctx, sessionKey(sessionID), string(payload)); err != nil {
		return fmt.Errorf("write wishlist state: %w", err)
	}
	return nil
}

// CorruptStateError marks stored state that failed to decode.
type CorruptStateError struct {
	cause error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt wishlist state: %v", e.cause)
}

func (e *CorruptStateError) Unwrap() error {
	return e.cause
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID + ":" + wishlistItemsKey
}
