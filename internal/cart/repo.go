package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/angelmondragon/bacola-storefront/pkg/kv"
)

// cartItemsKey matches the storage key the storefront has always used for
// serialized cart lines; it is scoped per session by the repository.
const cartItemsKey = "cart_items"

// StoredLine is the durable representation of one cart line: identity plus
// quantity only, never a full product snapshot.
type StoredLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Repository persists cart lines through the key-value capability.
type Repository struct {
	store kv.Store
}

// NewRepository binds the repository to a key-value store.
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Load reads the stored lines for a session. A missing key yields an empty
// slice; unparsable stored data is returned as an error so the caller can
// discard it entirely.
func (r *Repository) Load(ctx context.Context, sessionID string) ([]StoredLine, error) {
	raw, ok, err := r.store.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, fmt.Errorf("read cart state: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var lines []StoredLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, &CorruptStateError{cause: err}
	}
	return lines, nil
}

// Save re-serializes the full line set after every mutation.
func (r *Repository) Save(ctx context.Context, sessionID string, lines []StoredLine) error {
	if lines == nil {
		lines = []StoredLine{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart state: %w", err)
	}
	if err := r.store.Set(ctx, sessionKey(sessionID), string(payload)); err != nil {
		return fmt.Errorf("write cart state: %w", err)
	}
	return nil
}

// CorruptStateError marks stored state that failed to decode. The service
// logs it and falls back to an empty cart rather than partially recovering.
type CorruptStateError struct {
	cause error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt cart state: %v", e.cause)
}

func (e *CorruptStateError) Unwrap() error {
	return e.cause
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID + ":" + cartItemsKey
}
