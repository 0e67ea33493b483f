// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every placed order.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusProcessing indicates the seller has accepted the order.
	OrderStatusProcessing OrderStatus = "Processing"
	// OrderStatusShipped indicates the order has left the seller.
	OrderStatusShipped OrderStatus = "Shipped"
	// OrderStatusDelivered is the terminal state of a fulfilled order.
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusCancelled is the terminal state of a cancelled order.
	// Reachable from Pending only.
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may move to next. Fulfillment
// advances one step at a time (Pending → Processing → Shipped → Delivered);
// cancellation is only allowed while still Pending.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing || next == OrderStatusCancelled
	case OrderStatusProcessing:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// OrderItem is a single line item of an order. It references its product by
// ID only; the order does not own the product.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`
}

// Order is a buyer's purchase from a single seller. Buyer, seller and
// products are referenced by ID (weak relations).
type Order struct {
	ID              uuid.UUID       `json:"id"`              // The Global Unique Identifier (GUID) for the order.
	BuyerID         uuid.UUID       `json:"buyerId"`         // The buyer that placed the order.
	SellerID        uuid.UUID       `json:"sellerId"`        // The seller fulfilling the order.
	Items           []OrderItem     `json:"products"`        // The ordered line items.
	TotalPrice      decimal.Decimal `json:"totalAmount"`     // The total order amount.
	ShippingAddress string          `json:"shippingAddress"` // Where the order should be delivered.
	Status          OrderStatus     `json:"status"`          // Current lifecycle state.
	CreatedAt       time.Time       `json:"createdAt"`       // Timestamp of when the order was placed.
	UpdatedAt       time.Time       `json:"updatedAt"`       // Timestamp of the last modification.
}
