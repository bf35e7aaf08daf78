package cli

import "quickcart/internal/services"

// cart is the in-session shopping cart: quantities keyed by product id plus
// the order the products were added in. It only becomes an order at
// checkout and is discarded on logout.
type cart struct {
	quantities map[string]int
	order      []string
}

func newCart() *cart {
	return &cart{quantities: make(map[string]int)}
}

func (c *cart) add(productID string, qty int) {
	if _, ok := c.quantities[productID]; !ok {
		c.order = append(c.order, productID)
	}
	c.quantities[productID] += qty
}

func (c *cart) entries() []services.CartEntry {
	out := make([]services.CartEntry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, services.CartEntry{ProductID: id, Quantity: c.quantities[id]})
	}
	return out
}

func (c *cart) clear() {
	c.quantities = make(map[string]int)
	c.order = nil
}

func (c *cart) empty() bool {
	return len(c.order) == 0
}
