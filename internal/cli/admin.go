package cli

import (
	"fmt"
)

func (m *Menu) adminMenu() {
	fmt.Fprintf(m.out, "\n=== Admin: %s ===\n", m.sess.Current().Name)
	fmt.Fprintln(m.out, "1. Add product")
	fmt.Fprintln(m.out, "2. Restock product")
	fmt.Fprintln(m.out, "3. List products")
	fmt.Fprintln(m.out, "4. All orders")
	fmt.Fprintln(m.out, "5. Logout")

	choice, err := m.readChoice("Select: ", 5)
	if err != nil {
		m.printErr(err)
		return
	}

	switch choice {
	case 1:
		m.addProduct()
	case 2:
		m.restockProduct()
	case 3:
		m.printProducts(m.catalog.ListProducts())
	case 4:
		m.printOrders(m.orders.AllOrders())
	case 5:
		m.logout()
	}
}

func (m *Menu) addProduct() {
	id, err := m.readLine("Product id: ")
	if err != nil {
		return
	}
	name, err := m.readLine("Name: ")
	if err != nil {
		return
	}
	price, err := m.readFloat("Price: ")
	if err != nil {
		m.printErr(err)
		return
	}
	stock, err := m.readInt("Initial stock: ")
	if err != nil {
		m.printErr(err)
		return
	}
	category, err := m.readLine("Category (blank for General): ")
	if err != nil {
		return
	}

	product, err := m.catalog.AddProduct(id, name, price, stock, category)
	if err != nil {
		fmt.Fprintln(m.out, "Cannot add product:", err)
		return
	}
	fmt.Fprintf(m.out, "Added %s (%s) at %.2f, %d in stock.\n", product.Name, product.ID, product.Price, product.Stock)
}

func (m *Menu) restockProduct() {
	id, err := m.readLine("Product id: ")
	if err != nil {
		return
	}
	qty, err := m.readInt("Quantity to add: ")
	if err != nil {
		m.printErr(err)
		return
	}

	product, err := m.catalog.Restock(id, qty)
	if err != nil {
		fmt.Fprintln(m.out, "Cannot restock:", err)
		return
	}
	fmt.Fprintf(m.out, "%s now has %d in stock.\n", product.Name, product.Stock)
}
