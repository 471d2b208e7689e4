package enums

import "fmt"

// StockStatus is the free-text status label carried by catalog products.
type StockStatus string

const (
	StockStatusInStock StockStatus = "IN STOCK"
	StockStatusOnSale  StockStatus = "ON SALE"
)

var validStockStatuses = []StockStatus{
	StockStatusInStock,
	StockStatusOnSale,
}

// String implements fmt.Stringer.
func (s StockStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StockStatus.
func (s StockStatus) IsValid() bool {
	for _, candidate := range validStockStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockStatus converts raw input into a StockStatus.
func ParseStockStatus(value string) (StockStatus, error) {
	for _, candidate := range validStockStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock status %q", value)
}
