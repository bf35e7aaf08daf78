package models

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusAssigned   OrderStatus = "assigned"
	StatusInProgress OrderStatus = "in_progress"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus maps a string tag to its status, rejecting unknown tags.
func ParseOrderStatus(tag string) (OrderStatus, error) {
	switch s := OrderStatus(tag); s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusDelivered, StatusCancelled:
		return s, nil
	}
	return "", fmt.Errorf("unknown order status %q", tag)
}

// CanTransitionTo reports whether the delivery state machine allows moving
// from s to next: pending→assigned→in_progress→{delivered, cancelled}.
// Delivered and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusAssigned
	case StatusAssigned:
		return next == StatusInProgress
	case StatusInProgress:
		return next == StatusDelivered || next == StatusCancelled
	}
	return false
}

// OrderLineItem is one product+quantity entry within an order. The subtotal
// is computed once at construction and never re-derived, so later price
// changes do not rewrite history.
type OrderLineItem struct {
	ProductID   string
	ProductName string
	UnitPrice   float64
	Quantity    int
	Subtotal    float64
}

func NewLineItem(p *Product, quantity int) OrderLineItem {
	return OrderLineItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    quantity,
		Subtotal:    p.Price * float64(quantity),
	}
}

func (it OrderLineItem) ToRecord() Record {
	return Record{
		"product_id":   it.ProductID,
		"product_name": it.ProductName,
		"unit_price":   it.UnitPrice,
		"quantity":     it.Quantity,
		"subtotal":     it.Subtotal,
	}
}

func LineItemFromRecord(rec Record) (OrderLineItem, error) {
	const entity = "order line item"

	productID, err := recString(rec, entity, "product_id")
	if err != nil {
		return OrderLineItem{}, err
	}
	productName, err := recString(rec, entity, "product_name")
	if err != nil {
		return OrderLineItem{}, err
	}
	unitPrice, err := recFloat(rec, entity, "unit_price")
	if err != nil {
		return OrderLineItem{}, err
	}
	quantity, err := recInt(rec, entity, "quantity")
	if err != nil {
		return OrderLineItem{}, err
	}
	subtotal, err := recFloat(rec, entity, "subtotal")
	if err != nil {
		return OrderLineItem{}, err
	}

	return OrderLineItem{
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		Subtotal:    subtotal,
	}, nil
}

type Order struct {
	ID               string
	CustomerUsername string
	Items            []OrderLineItem
	DeliveryAddress  string
	TotalAmount      float64
	Status           OrderStatus
	RiderUsername    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// orderIDLayout embeds the creation timestamp in the order id, which keeps
// ids chronologically sortable.
const orderIDLayout = "20060102150405.000000000"

// NewOrder creates a pending order. The total is the sum of the line item
// subtotals at this moment and is never recomputed.
func NewOrder(customer string, items []OrderLineItem, address string) *Order {
	now := time.Now()
	var total float64
	for _, it := range items {
		total += it.Subtotal
	}
	return &Order{
		ID:               "ORD-" + now.Format(orderIDLayout),
		CustomerUsername: customer,
		Items:            items,
		DeliveryAddress:  address,
		TotalAmount:      total,
		Status:           StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// AssignRider hands the order to a rider and marks it assigned. It does not
// check the current status; callers verify the order is still pending.
func (o *Order) AssignRider(rider string) {
	o.RiderUsername = rider
	o.Status = StatusAssigned
	o.UpdatedAt = time.Now()
}

// SetStatus overwrites the status without consulting the transition table;
// legality checks live in the service layer.
func (o *Order) SetStatus(status OrderStatus) {
	o.Status = status
	o.UpdatedAt = time.Now()
}

func (o *Order) ToRecord() Record {
	items := make([]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any(it.ToRecord()))
	}
	return Record{
		"order_id":          o.ID,
		"customer_username": o.CustomerUsername,
		"items":             items,
		"delivery_address":  o.DeliveryAddress,
		"total_amount":      o.TotalAmount,
		"status":            string(o.Status),
		"rider_username":    o.RiderUsername,
		"created_at":        o.CreatedAt.Format(TimeLayout),
		"updated_at":        o.UpdatedAt.Format(TimeLayout),
	}
}

// OrderFromRecord rebuilds an order, decoding each line item independently.
// An absent or empty items list is accepted as-is; the non-empty rule is
// enforced at creation time, not on read.
func OrderFromRecord(rec Record) (*Order, error) {
	const entity = "order"

	id, err := recString(rec, entity, "order_id")
	if err != nil {
		return nil, err
	}
	customer, err := recString(rec, entity, "customer_username")
	if err != nil {
		return nil, err
	}
	address, err := recString(rec, entity, "delivery_address")
	if err != nil {
		return nil, err
	}
	total, err := recFloat(rec, entity, "total_amount")
	if err != nil {
		return nil, err
	}
	statusTag, err := recString(rec, entity, "status")
	if err != nil {
		return nil, err
	}
	status, err := ParseOrderStatus(statusTag)
	if err != nil {
		return nil, &MalformedRecordError{Entity: entity, Field: "status", Reason: err.Error()}
	}
	rider, err := recOptString(rec, entity, "rider_username")
	if err != nil {
		return nil, err
	}
	createdAt, err := recTime(rec, entity, "created_at")
	if err != nil {
		return nil, err
	}
	updatedAt, err := recTime(rec, entity, "updated_at")
	if err != nil {
		return nil, err
	}

	var items []OrderLineItem
	if raw, ok := rec["items"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, &MalformedRecordError{Entity: entity, Field: "items", Reason: fmt.Sprintf("expected list, got %T", raw)}
		}
		items = make([]OrderLineItem, 0, len(list))
		for _, el := range list {
			itemRec, ok := el.(map[string]any)
			if !ok {
				return nil, &MalformedRecordError{Entity: entity, Field: "items", Reason: fmt.Sprintf("expected record, got %T", el)}
			}
			item, err := LineItemFromRecord(Record(itemRec))
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}

	return &Order{
		ID:               id,
		CustomerUsername: customer,
		Items:            items,
		DeliveryAddress:  address,
		TotalAmount:      total,
		Status:           status,
		RiderUsername:    rider,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}
