// Package cart owns the shopping cart state: an ordered set of lines pairing
// a catalog product with a positive quantity, persisted after every mutation.
package cart

import (
	"fmt"

	"github.com/angelmondragon/bacola-storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

// Line pairs one product with a quantity. Quantity is always >= 1; a request
// to set it lower removes the line instead.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the in-memory authoritative cart state. At most one line exists per
// product identity; lines keep insertion order.
type Cart struct {
	lines []Line
}

// Add increments the existing line for the product or appends a new one.
// No upper bound is enforced on quantities.
func (c *Cart) Add(p catalog.Product, quantity int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: quantity})
}

// Remove deletes the line for the identity; no-op when absent.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity to exactly the given value. A value of
// zero or less removes the line. No-op when the line does not exist.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total sums price times quantity across all lines. A malformed price string
// surfaces as an error instead of poisoning the sum.
func (c *Cart) Total() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range c.lines {
		amount, err := line.Product.PriceAmount()
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("line %s: %w", line.Product.ID, err)
		}
		total = total.Add(amount.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total, nil
}

// Count sums quantities across all lines, not the number of distinct lines.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Contains reports whether a line exists for the identity.
func (c *Cart) Contains(productID string) bool {
	for _, line := range c.lines {
		if line.Product.ID == productID {
			return true
		}
	}
	return false
}
