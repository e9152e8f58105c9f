package models

// CartItem is a full snapshot of a product at the moment it was added to the
// cart, plus the selected quantity. Later edits to the product do not affect
// items already in a cart.
type CartItem struct {
	Product
	CartQuantity int `json:"cartQuantity"`
}

// LineTotal is the item's contribution to the cart subtotal.
func (i CartItem) LineTotal() int {
	return i.Price * i.CartQuantity
}
