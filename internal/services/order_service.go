package services

import (
	"errors"
	"fmt"

	"quickcart/internal/models"
	"quickcart/internal/store"

	"github.com/rs/zerolog"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotPending   = errors.New("order is no longer pending")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNotAssignedRider  = errors.New("order is assigned to a different rider")
)

// CartEntry is one product+quantity pair of a customer's cart, resolved
// against the catalog at checkout.
type CartEntry struct {
	ProductID string
	Quantity  int
}

type OrderService struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewOrderService(st *store.Store, logger zerolog.Logger) *OrderService {
	return &OrderService{
		store:  st,
		logger: logger,
	}
}

// PlaceOrder turns a cart into a pending order. The whole cart is validated
// against the catalog before any stock is touched, so a rejected cart leaves
// the store unchanged.
func (s *OrderService) PlaceOrder(customer string, cart []CartEntry, address string) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, errors.New("cart is empty")
	}
	if address == "" {
		return nil, errors.New("delivery address is required")
	}

	// Merge duplicate entries for the same product first, so the stock
	// check sees the combined quantity.
	merged := make([]CartEntry, 0, len(cart))
	index := make(map[string]int, len(cart))
	for _, entry := range cart {
		if entry.Quantity <= 0 {
			return nil, errors.New("quantity must be positive")
		}
		if i, ok := index[entry.ProductID]; ok {
			merged[i].Quantity += entry.Quantity
			continue
		}
		index[entry.ProductID] = len(merged)
		merged = append(merged, entry)
	}

	items := make([]models.OrderLineItem, 0, len(merged))
	for _, entry := range merged {
		product := s.store.GetProduct(entry.ProductID)
		if product == nil {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, entry.ProductID)
		}
		if entry.Quantity > product.Stock {
			return nil, fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, product.ID, product.Stock)
		}
		items = append(items, models.NewLineItem(product, entry.Quantity))
	}

	for _, entry := range merged {
		product := s.store.GetProduct(entry.ProductID)
		s.store.SetProductStock(product.ID, product.Stock-entry.Quantity)
	}

	order := models.NewOrder(customer, items, address)
	s.store.PutOrder(order)

	s.logger.Info().
		Str("order_id", order.ID).
		Str("customer", customer).
		Float64("total", order.TotalAmount).
		Msg("Order placed")
	return order, nil
}

// AssignRider hands a pending order to a rider. The pending check lives
// here: the entity operation itself overwrites without validating.
func (s *OrderService) AssignRider(orderID, rider string) (*models.Order, error) {
	order := s.store.GetOrder(orderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.StatusPending {
		return nil, ErrOrderNotPending
	}

	order.AssignRider(rider)
	s.store.UpdateOrder(order)

	s.logger.Info().Str("order_id", orderID).Str("rider", rider).Msg("Order assigned to rider")
	return order, nil
}

// UpdateStatus moves an order along the delivery state machine on behalf of
// its assigned rider.
func (s *OrderService) UpdateStatus(orderID, rider string, next models.OrderStatus) (*models.Order, error) {
	order := s.store.GetOrder(orderID)
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.RiderUsername != rider {
		return nil, ErrNotAssignedRider
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, next)
	}

	order.SetStatus(next)
	s.store.UpdateOrder(order)

	s.logger.Info().
		Str("order_id", orderID).
		Str("status", string(next)).
		Msg("Order status updated")
	return order, nil
}

func (s *OrderService) GetOrder(id string) *models.Order {
	return s.store.GetOrder(id)
}

func (s *OrderService) AllOrders() []*models.Order {
	return s.store.ListOrders()
}

func (s *OrderService) OrdersByCustomer(username string) []*models.Order {
	return s.store.ListOrdersBy(func(o *models.Order) bool {
		return o.CustomerUsername == username
	})
}

func (s *OrderService) OrdersByRider(username string) []*models.Order {
	return s.store.ListOrdersBy(func(o *models.Order) bool {
		return o.RiderUsername == username
	})
}

func (s *OrderService) PendingOrders() []*models.Order {
	return s.store.ListOrdersBy(func(o *models.Order) bool {
		return o.Status == models.StatusPending
	})
}
