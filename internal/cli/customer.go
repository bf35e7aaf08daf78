package cli

import (
	"fmt"
)

func (m *Menu) customerMenu() {
	fmt.Fprintf(m.out, "\n=== Customer: %s ===\n", m.sess.Current().Name)
	fmt.Fprintln(m.out, "1. Browse products")
	fmt.Fprintln(m.out, "2. Add to cart")
	fmt.Fprintln(m.out, "3. View cart")
	fmt.Fprintln(m.out, "4. Checkout")
	fmt.Fprintln(m.out, "5. My orders")
	fmt.Fprintln(m.out, "6. Logout")

	choice, err := m.readChoice("Select: ", 6)
	if err != nil {
		m.printErr(err)
		return
	}

	switch choice {
	case 1:
		m.printProducts(m.catalog.ListProducts())
	case 2:
		m.addToCart()
	case 3:
		m.viewCart()
	case 4:
		m.checkout()
	case 5:
		m.printOrders(m.orders.OrdersByCustomer(m.sess.Current().Username))
	case 6:
		m.logout()
	}
}

func (m *Menu) addToCart() {
	id, err := m.readLine("Product id: ")
	if err != nil {
		return
	}
	product := m.catalog.GetProduct(id)
	if product == nil {
		fmt.Fprintln(m.out, "No such product.")
		return
	}
	if product.Stock == 0 {
		fmt.Fprintln(m.out, "Out of stock.")
		return
	}

	qty, err := m.readInt("Quantity: ")
	if err != nil {
		m.printErr(err)
		return
	}
	if qty <= 0 {
		fmt.Fprintln(m.out, "Quantity must be positive.")
		return
	}
	if qty > product.Stock {
		fmt.Fprintf(m.out, "Only %d left in stock.\n", product.Stock)
		return
	}

	m.cart.add(product.ID, qty)
	fmt.Fprintf(m.out, "Added %d x %s to cart.\n", qty, product.Name)
}

func (m *Menu) viewCart() {
	if m.cart.empty() {
		fmt.Fprintln(m.out, "Cart is empty.")
		return
	}

	var total float64
	for _, entry := range m.cart.entries() {
		product := m.catalog.GetProduct(entry.ProductID)
		if product == nil {
			continue
		}
		line := product.Price * float64(entry.Quantity)
		total += line
		fmt.Fprintf(m.out, "%d x %s @ %.2f = %.2f\n", entry.Quantity, product.Name, product.Price, line)
	}
	fmt.Fprintf(m.out, "Cart total: %.2f\n", total)
}

func (m *Menu) checkout() {
	if m.cart.empty() {
		fmt.Fprintln(m.out, "Cart is empty.")
		return
	}

	address, err := m.readLine("Delivery address: ")
	if err != nil {
		return
	}

	order, err := m.orders.PlaceOrder(m.sess.Current().Username, m.cart.entries(), address)
	if err != nil {
		fmt.Fprintln(m.out, "Checkout failed:", err)
		return
	}

	m.cart.clear()
	fmt.Fprintf(m.out, "Order %s placed. Total: %.2f\n", order.ID, order.TotalAmount)
}
