package domain

import (
	"errors"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// orderStatusNext maps each non-terminal status to its immediate successor.
var orderStatusNext = map[OrderStatus]OrderStatus{
	OrderStatusPending:    OrderStatusConfirmed,
	OrderStatusConfirmed:  OrderStatusInProgress,
	OrderStatusInProgress: OrderStatusCompleted,
}

// IsTerminal reports whether no further transitions are legal.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is a legal transition: either the
// immediate next status in the chain, or cancellation from any non-terminal
// status. Skipping intermediate statuses is never legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return orderStatusNext[s] == next
}

// OrderItem is one rented product line within a placed order.
type OrderItem struct {
	ProductID      int64     `json:"product_id"`
	ProductName    string    `json:"product_name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	RentalStart    time.Time `json:"rental_start"`
	RentalEnd      time.Time `json:"rental_end"`
	DurationDays   int       `json:"duration_days"`
	SubtotalCents  int64     `json:"subtotal_cents"`
}

// Order is a customer order as placed at checkout. The money breakdown is
// computed server-side at placement and stored with the order.
type Order struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id"`
	Items           []OrderItem `json:"items"`
	BillingAddress  string      `json:"billing_address"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryMethod  string      `json:"delivery_method"`
	PaymentMethod   string      `json:"payment_method"`
	SubtotalCents   int64       `json:"subtotal_cents"`
	TaxCents        int64       `json:"tax_cents"`
	DeliveryCents   int64       `json:"delivery_cents"`
	DiscountCents   int64       `json:"discount_cents"`
	TotalCents      int64       `json:"total_cents"`
	AppliedCoupon   string      `json:"applied_coupon,omitempty"`
	Status          OrderStatus `json:"status"`
	CreatedOn       time.Time   `json:"created_on"`
	UpdatedOn       time.Time   `json:"updated_on"`
}

// Transition moves the order to next, enforcing the status chain.
func (o *Order) Transition(next OrderStatus) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	o.UpdatedOn = time.Now().UTC()
	return nil
}
