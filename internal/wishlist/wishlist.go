// Package wishlist owns the liked-products set: product references unique by
// identity, persisted with the same discipline as the cart.
package wishlist

import (
	"github.com/angelmondragon/bacola-storefront/internal/catalog"
)

// Wishlist is the in-memory set of liked products, unique by identity, in
// insertion order.
type Wishlist struct {
	items []catalog.Product
}

// Add appends the product unless it is already present.
func (w *Wishlist) Add(p catalog.Product) {
	if w.Contains(p.ID) {
		return
	}
	w.items = append(w.items, p)
}

// Remove drops the entry for the identity; no-op when absent.
func (w *Wishlist) Remove(productID string) {
	for i := range w.items {
		if w.items[i].ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

// Toggle adds the product when absent and removes it when present.
func (w *Wishlist) Toggle(p catalog.Product) {
	if w.Contains(p.ID) {
		w.Remove(p.ID)
		return
	}
	w.Add(p)
}

// Clear removes every entry.
func (w *Wishlist) Clear() {
	w.items = nil
}

// Contains reports membership by identity.
func (w *Wishlist) Contains(productID string) bool {
	for _, item := range w.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the liked products in insertion order.
func (w *Wishlist) Items() []catalog.Product {
	out := make([]catalog.Product, len(w.items))
	copy(out, w.items)
	return out
}
