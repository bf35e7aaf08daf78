package cli

import (
	"fmt"

	"quickcart/internal/models"
)

func (m *Menu) riderMenu() {
	fmt.Fprintf(m.out, "\n=== Rider: %s ===\n", m.sess.Current().Name)
	fmt.Fprintln(m.out, "1. Pending orders")
	fmt.Fprintln(m.out, "2. Accept an order")
	fmt.Fprintln(m.out, "3. My deliveries")
	fmt.Fprintln(m.out, "4. Update delivery status")
	fmt.Fprintln(m.out, "5. Logout")

	choice, err := m.readChoice("Select: ", 5)
	if err != nil {
		m.printErr(err)
		return
	}

	switch choice {
	case 1:
		m.printOrders(m.orders.PendingOrders())
	case 2:
		m.acceptOrder()
	case 3:
		m.printOrders(m.orders.OrdersByRider(m.sess.Current().Username))
	case 4:
		m.updateDeliveryStatus()
	case 5:
		m.logout()
	}
}

func (m *Menu) acceptOrder() {
	id, err := m.readLine("Order id: ")
	if err != nil {
		return
	}

	order, err := m.orders.AssignRider(id, m.sess.Current().Username)
	if err != nil {
		fmt.Fprintln(m.out, "Cannot accept order:", err)
		return
	}
	fmt.Fprintf(m.out, "Order %s is yours. Deliver to: %s\n", order.ID, order.DeliveryAddress)
}

func (m *Menu) updateDeliveryStatus() {
	id, err := m.readLine("Order id: ")
	if err != nil {
		return
	}

	fmt.Fprintln(m.out, "1. In progress")
	fmt.Fprintln(m.out, "2. Delivered")
	fmt.Fprintln(m.out, "3. Cancelled")
	choice, err := m.readChoice("New status: ", 3)
	if err != nil {
		m.printErr(err)
		return
	}

	next := map[int]models.OrderStatus{
		1: models.StatusInProgress,
		2: models.StatusDelivered,
		3: models.StatusCancelled,
	}[choice]

	order, err := m.orders.UpdateStatus(id, m.sess.Current().Username, next)
	if err != nil {
		fmt.Fprintln(m.out, "Cannot update order:", err)
		return
	}
	fmt.Fprintf(m.out, "Order %s is now %s.\n", order.ID, order.Status)
}
