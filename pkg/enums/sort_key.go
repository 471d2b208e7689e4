package enums

import "fmt"

// SortKey selects the ordering applied by the catalog query pipeline.
type SortKey string

const (
	// SortKeyLatest preserves the catalog's input order.
	SortKeyLatest    SortKey = "latest"
	SortKeyPriceLow  SortKey = "price_low"
	SortKeyPriceHigh SortKey = "price_high"
	SortKeyRating    SortKey = "rating"
)

var validSortKeys = []SortKey{
	SortKeyLatest,
	SortKeyPriceLow,
	SortKeyPriceHigh,
	SortKeyRating,
}

// String implements fmt.Stringer.
func (k SortKey) String() string {
	return string(k)
}

// IsValid reports whether the value is a known SortKey.
func (k SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey. Empty input falls back to
// the default input-order sort.
func ParseSortKey(value string) (SortKey, error) {
	if value == "" {
		return SortKeyLatest, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
