package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusInvoiced  OrderStatus = "invoiced"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a sales order placed by a customer.
type Order struct {
	// ID is the server-assigned order identifier (UUID).
	ID string `json:"id"`

	// CustomerID references the ordering customer.
	CustomerID string `json:"customer_id"`

	// Number is the human-readable order number (e.g. "SO-2026-0042").
	Number string `json:"number"`

	// Status is the current lifecycle state.
	Status OrderStatus `json:"status"`

	// TotalCents is the order total in minor currency units. Stored as
	// an integer to keep arithmetic exact.
	TotalCents int64 `json:"total_cents"`

	// Currency is the ISO 4217 currency code (e.g. "EUR").
	Currency string `json:"currency"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}
