package cart

import (
	"sync"

	"github.com/alialzoriki7-lab/kado-store/models"
)

// Cart is an ordered, session-local collection of product snapshots with
// quantities. At most one entry exists per product id; adding an already
// present product merges into its quantity. Operations never fail.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add merges qty into an existing entry for the product, or appends a new
// snapshot entry. Stock validation is the caller's concern; the product
// detail view clamps the quantity selector before calling Add.
func (c *Cart) Add(p models.Product, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].CartQuantity += qty
			return
		}
	}
	c.items = append(c.items, models.CartItem{Product: p, CartQuantity: qty})
}

// Remove deletes the entry for the product id. Removing an absent id is a
// no-op.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity applies a delta to an entry's quantity, clamped to a floor
// of 1. Removal is the only way to reach zero. Absent id is a no-op.
func (c *Cart) UpdateQuantity(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			q := c.items[i].CartQuantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].CartQuantity = q
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal sums price times quantity over all entries.
func (c *Cart) Subtotal() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, i := range c.items {
		total += i.LineTotal()
	}
	return total
}
