package cli

import (
	"bufio"
	"fmt"
	"io"

	"quickcart/internal/models"
	"quickcart/internal/services"
	"quickcart/internal/session"

	"github.com/rs/zerolog"
)

// Menu drives the interactive session: it routes numbered choices to the
// handler for the current role, the console counterpart of a request router.
type Menu struct {
	users   *services.UserService
	catalog *services.CatalogService
	orders  *services.OrderService
	sess    *session.Session
	cart    *cart

	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger

	eof bool
}

func NewMenu(
	users *services.UserService,
	catalog *services.CatalogService,
	orders *services.OrderService,
	sess *session.Session,
	in io.Reader,
	out io.Writer,
	logger zerolog.Logger,
) *Menu {
	return &Menu{
		users:   users,
		catalog: catalog,
		orders:  orders,
		sess:    sess,
		cart:    newCart(),
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logger,
	}
}

// Run loops until the user exits or input runs out. Handler errors are
// printed and the menu re-prompts; nothing here terminates the process.
func (m *Menu) Run() {
	for !m.eof {
		if !m.sess.IsAuthenticated() {
			if quit := m.anonymousMenu(); quit {
				return
			}
			continue
		}

		switch m.sess.Role() {
		case models.RoleAdmin:
			m.adminMenu()
		case models.RoleRider:
			m.riderMenu()
		default:
			m.customerMenu()
		}
	}
}

func (m *Menu) anonymousMenu() bool {
	fmt.Fprintln(m.out, "\n=== QuickCart ===")
	fmt.Fprintln(m.out, "1. Login")
	fmt.Fprintln(m.out, "2. Register")
	fmt.Fprintln(m.out, "3. Exit")

	choice, err := m.readChoice("Select: ", 3)
	if err != nil {
		m.printErr(err)
		return false
	}

	switch choice {
	case 1:
		m.login()
	case 2:
		m.register()
	case 3:
		return true
	}
	return false
}

func (m *Menu) login() {
	username, err := m.readLine("Username: ")
	if err != nil {
		return
	}
	password, err := m.readLine("Password: ")
	if err != nil {
		return
	}

	user, err := m.users.Authenticate(username, password)
	if err != nil {
		fmt.Fprintln(m.out, "Login failed:", err)
		return
	}

	m.sess.Login(user)
	fmt.Fprintf(m.out, "Welcome back, %s!\n", user.Name)
}

func (m *Menu) register() {
	username, err := m.readLine("Username: ")
	if err != nil {
		return
	}
	password, err := m.readLine("Password: ")
	if err != nil {
		return
	}
	name, err := m.readLine("Display name (blank for username): ")
	if err != nil {
		return
	}

	fmt.Fprintln(m.out, "1. Customer")
	fmt.Fprintln(m.out, "2. Rider")
	choice, err := m.readChoice("Account type: ", 2)
	if err != nil {
		m.printErr(err)
		return
	}
	role := models.RoleCustomer
	if choice == 2 {
		role = models.RoleRider
	}

	user, err := m.users.Register(username, password, string(role), name)
	if err != nil {
		fmt.Fprintln(m.out, "Registration failed:", err)
		return
	}
	fmt.Fprintf(m.out, "Account created for %s. You can log in now.\n", user.Username)
}

func (m *Menu) logout() {
	m.cart.clear()
	m.sess.Logout()
	fmt.Fprintln(m.out, "Logged out.")
}

func (m *Menu) printErr(err error) {
	if err == nil || m.eof {
		return
	}
	fmt.Fprintln(m.out, err)
}

func (m *Menu) printProducts(products []*models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products in the catalog.")
		return
	}
	fmt.Fprintf(m.out, "%-10s %-24s %10s %7s  %s\n", "ID", "NAME", "PRICE", "STOCK", "CATEGORY")
	for _, p := range products {
		fmt.Fprintf(m.out, "%-10s %-24s %10.2f %7d  %s\n", p.ID, p.Name, p.Price, p.Stock, p.Category)
	}
}

func (m *Menu) printOrders(orders []*models.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(m.out, "No orders found.")
		return
	}
	for _, o := range orders {
		m.printOrder(o)
	}
}

func (m *Menu) printOrder(o *models.Order) {
	fmt.Fprintf(m.out, "\nOrder %s  [%s]\n", o.ID, o.Status)
	fmt.Fprintf(m.out, "  Customer: %s\n", o.CustomerUsername)
	if o.RiderUsername != "" {
		fmt.Fprintf(m.out, "  Rider: %s\n", o.RiderUsername)
	}
	fmt.Fprintf(m.out, "  Deliver to: %s\n", o.DeliveryAddress)
	for _, it := range o.Items {
		fmt.Fprintf(m.out, "  %d x %s @ %.2f = %.2f\n", it.Quantity, it.ProductName, it.UnitPrice, it.Subtotal)
	}
	fmt.Fprintf(m.out, "  Total: %.2f\n", o.TotalAmount)
	fmt.Fprintf(m.out, "  Placed %s, updated %s\n",
		o.CreatedAt.Format("2006-01-02 15:04:05"),
		o.UpdatedAt.Format("2006-01-02 15:04:05"))
}
