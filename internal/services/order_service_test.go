package services

import (
	"path/filepath"
	"testing"

	"quickcart/internal/models"
	"quickcart/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "data.json"), zerolog.Nop())
}

func seedWidget(t *testing.T, st *store.Store) *models.Product {
	t.Helper()
	p := models.NewProduct("P100", "Widget", 4.5, 10, "")
	st.PutProduct(p)
	return p
}

func TestPlaceOrderDecrementsStock(t *testing.T) {
	st := newTestStore(t)
	seedWidget(t, st)
	svc := NewOrderService(st, zerolog.Nop())

	order, err := svc.PlaceOrder("alice", []CartEntry{{ProductID: "P100", Quantity: 3}}, "12 Main St")
	require.NoError(t, err)

	assert.Equal(t, 7, st.GetProduct("P100").Stock)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 13.5, order.TotalAmount)
	require.Len(t, st.ListOrders(), 1)
	assert.Equal(t, order.ID, st.ListOrders()[0].ID)
}

func TestPlaceOrderRejectsBadCarts(t *testing.T) {
	tests := []struct {
		name    string
		cart    []CartEntry
		address string
		wantErr error
	}{
		{name: "empty cart", cart: nil, address: "12 Main St"},
		{name: "no address", cart: []CartEntry{{ProductID: "P100", Quantity: 1}}, address: ""},
		{name: "zero quantity", cart: []CartEntry{{ProductID: "P100", Quantity: 0}}, address: "12 Main St"},
		{name: "unknown product", cart: []CartEntry{{ProductID: "P999", Quantity: 1}}, address: "12 Main St", wantErr: ErrProductNotFound},
		{name: "quantity above stock", cart: []CartEntry{{ProductID: "P100", Quantity: 11}}, address: "12 Main St", wantErr: ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			seedWidget(t, st)
			svc := NewOrderService(st, zerolog.Nop())

			_, err := svc.PlaceOrder("alice", tt.cart, tt.address)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// a rejected cart must leave the store untouched
			assert.Equal(t, 10, st.GetProduct("P100").Stock)
			assert.Empty(t, st.ListOrders())
		})
	}
}

func TestPlaceOrderValidatesWholeCartFirst(t *testing.T) {
	st := newTestStore(t)
	seedWidget(t, st)
	gadget := models.NewProduct("P200", "Gadget", 2, 1, "")
	st.PutProduct(gadget)
	svc := NewOrderService(st, zerolog.Nop())

	// first line is satisfiable, second is not; neither stock may move
	_, err := svc.PlaceOrder("alice", []CartEntry{
		{ProductID: "P100", Quantity: 3},
		{ProductID: "P200", Quantity: 5},
	}, "12 Main St")

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 10, st.GetProduct("P100").Stock)
	assert.Equal(t, 1, st.GetProduct("P200").Stock)
	assert.Empty(t, st.ListOrders())
}

// Split cart entries for one product count against stock as a whole: two
// lines of 6 against stock 10 must be rejected, not drive stock to -2.
func TestPlaceOrderDuplicateEntriesCannotOversell(t *testing.T) {
	st := newTestStore(t)
	seedWidget(t, st)
	svc := NewOrderService(st, zerolog.Nop())

	_, err := svc.PlaceOrder("alice", []CartEntry{
		{ProductID: "P100", Quantity: 6},
		{ProductID: "P100", Quantity: 6},
	}, "12 Main St")

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 10, st.GetProduct("P100").Stock)
	assert.Empty(t, st.ListOrders())
}

func TestPlaceOrderMergesDuplicateEntries(t *testing.T) {
	st := newTestStore(t)
	seedWidget(t, st)
	svc := NewOrderService(st, zerolog.Nop())

	order, err := svc.PlaceOrder("alice", []CartEntry{
		{ProductID: "P100", Quantity: 2},
		{ProductID: "P100", Quantity: 3},
	}, "12 Main St")
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 5, order.Items[0].Quantity)
	assert.Equal(t, 22.5, order.TotalAmount)
	assert.Equal(t, 5, st.GetProduct("P100").Stock)
}

func TestOrderTotalSurvivesPriceChange(t *testing.T) {
	st := newTestStore(t)
	widget := seedWidget(t, st)
	svc := NewOrderService(st, zerolog.Nop())

	order, err := svc.PlaceOrder("alice", []CartEntry{{ProductID: "P100", Quantity: 3}}, "12 Main St")
	require.NoError(t, err)

	widget.Price = 99
	st.PutProduct(widget)

	assert.Equal(t, 13.5, st.GetOrder(order.ID).TotalAmount)
}

func TestAssignRider(t *testing.T) {
	st := newTestStore(t)
	seedWidget(t, st)
	svc := NewOrderService(st, zerolog.Nop())

	order, err := svc.PlaceOrder("alice", []CartEntry{{ProductID: "P100", Quantity: 1}}, "12 Main St")
	require.NoError(t, err)
	created := order.CreatedAt

	got, err := svc.AssignRider(order.ID, "rex")
	require.NoError(t, err)

	assert.Equal(t, models.StatusAssigned, got.Status)
	assert.Equal(t, "rex", got.RiderUsername)
	assert.False(t, got.UpdatedAt.Before(created))
}

// Accepting an already-assigned order is rejected here, in the service. The
// entity operation underneath does not re-check the source state; that gap
// is pinned by TestAssignRiderDoesNotValidateSourceState in models.
func TestAssignRiderRejectsNonPendingOrder(t *testing.T) {
	st := newTestStore(t)
	seedWidget(t, st)
	svc := NewOrderService(st, zerolog.Nop())

	order, err := svc.PlaceOrder("alice", []CartEntry{{ProductID: "P100", Quantity: 1}}, "12 Main St")
	require.NoError(t, err)

	_, err = svc.AssignRider(order.ID, "rex")
	require.NoError(t, err)

	_, err = svc.AssignRider(order.ID, "roy")
	assert.ErrorIs(t, err, ErrOrderNotPending)
	assert.Equal(t, "rex", st.GetOrder(order.ID).RiderUsername)
}

func TestAssignRiderUnknownOrder(t *testing.T) {
	svc := NewOrderService(newTestStore(t), zerolog.Nop())

	_, err := svc.AssignRider("ORD-nope", "rex")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatusDeliveryFlow(t *testing.T) {
	st := newTestStore(t)
	seedWidget(t, st)
	svc := NewOrderService(st, zerolog.Nop())

	order, err := svc.PlaceOrder("alice", []CartEntry{{ProductID: "P100", Quantity: 1}}, "12 Main St")
	require.NoError(t, err)
	_, err = svc.AssignRider(order.ID, "rex")
	require.NoError(t, err)

	got, err := svc.UpdateStatus(order.ID, "rex", models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got.Status)

	got, err = svc.UpdateStatus(order.ID, "rex", models.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, got.Status)

	// delivered is terminal
	_, err = svc.UpdateStatus(order.ID, "rex", models.StatusInProgress)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestUpdateStatusRejectsSkippingAhead(t *testing.T) {
	st := newTestStore(t)
	seedWidget(t, st)
	svc := NewOrderService(st, zerolog.Nop())

	order, err := svc.PlaceOrder("alice", []CartEntry{{ProductID: "P100", Quantity: 1}}, "12 Main St")
	require.NoError(t, err)
	_, err = svc.AssignRider(order.ID, "rex")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(order.ID, "rex", models.StatusDelivered)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, models.StatusAssigned, st.GetOrder(order.ID).Status)
}

func TestUpdateStatusRejectsOtherRiders(t *testing.T) {
	st := newTestStore(t)
	seedWidget(t, st)
	svc := NewOrderService(st, zerolog.Nop())

	order, err := svc.PlaceOrder("alice", []CartEntry{{ProductID: "P100", Quantity: 1}}, "12 Main St")
	require.NoError(t, err)
	_, err = svc.AssignRider(order.ID, "rex")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(order.ID, "roy", models.StatusInProgress)
	assert.ErrorIs(t, err, ErrNotAssignedRider)
}

func TestOrderQueries(t *testing.T) {
	st := newTestStore(t)
	st.PutProduct(models.NewProduct("P100", "Widget", 4.5, 100, ""))
	svc := NewOrderService(st, zerolog.Nop())

	first, err := svc.PlaceOrder("alice", []CartEntry{{ProductID: "P100", Quantity: 1}}, "12 Main St")
	require.NoError(t, err)
	second, err := svc.PlaceOrder("bob", []CartEntry{{ProductID: "P100", Quantity: 1}}, "9 Side St")
	require.NoError(t, err)
	third, err := svc.PlaceOrder("alice", []CartEntry{{ProductID: "P100", Quantity: 1}}, "12 Main St")
	require.NoError(t, err)

	_, err = svc.AssignRider(second.ID, "rex")
	require.NoError(t, err)

	byAlice := svc.OrdersByCustomer("alice")
	require.Len(t, byAlice, 2)
	assert.Equal(t, first.ID, byAlice[0].ID)
	assert.Equal(t, third.ID, byAlice[1].ID)

	byRex := svc.OrdersByRider("rex")
	require.Len(t, byRex, 1)
	assert.Equal(t, second.ID, byRex[0].ID)

	pending := svc.PendingOrders()
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, third.ID, pending[1].ID)

	assert.Len(t, svc.AllOrders(), 3)
}
