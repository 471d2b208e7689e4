package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the prefix carried by every catalog price string.
const CurrencySymbol = "$"

// Parse converts a currency-prefixed price string such as "$5.45" into a
// decimal amount. Malformed input returns an explicit error rather than a
// propagating non-numeric value.
func Parse(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(trimmed, CurrencySymbol)
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return decimal.Decimal{}, fmt.Errorf("empty price string")
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse price %q: %w", value, err)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative price %q", value)
	}
	return amount, nil
}

// Format renders a decimal amount back into the catalog's price string form.
func Format(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}
