package entity

import "time"

// OrderStatus represents the kitchen-to-door lifecycle stage of an order.
type OrderStatus string

const (
	// OrderPreparing indicates the kitchen is still working on the order.
	OrderPreparing OrderStatus = "preparing"
	// OrderReady indicates the order is ready for pickup or dispatch.
	OrderReady OrderStatus = "ready"
	// OrderOnTheWay indicates the order has left with a courier.
	OrderOnTheWay OrderStatus = "on-the-way"
	// OrderDelivered indicates the order reached the customer.
	OrderDelivered OrderStatus = "delivered"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPreparing, OrderReady, OrderOnTheWay, OrderDelivered:
		return true
	default:
		return false
	}
}

// LineItem is a single priced line on an order.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order is a customer order as the staff console sees it. Status is the only
// field the console mutates; staff may move it to any value in the enumerated
// set (manual override is always allowed).
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Items        []LineItem  `json:"items"`
	Status       OrderStatus `json:"status"`
	PlacedAt     time.Time   `json:"placedAt"`
}

// Total returns the sum of quantity times unit price over all line items.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}

	return total
}

// WithStatus returns a copy of the order with the status replaced. Line items
// are shared with the original; they are never mutated.
func (o Order) WithStatus(status OrderStatus) Order {
	o.Status = status

	return o
}
