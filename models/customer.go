package models

import "time"

// Customer is a counterparty the tenant sells to. Tenant ownership is
// not part of the model: scoping is applied at the storage boundary from
// the request context, so a customer read through an unscoped request is
// indistinguishable from one read through its owning tenant.
type Customer struct {
	// ID is the server-assigned customer identifier (UUID).
	ID string `json:"id"`

	// Name is the customer's display name. Required.
	Name string `json:"name"`

	// Email is the primary billing contact address.
	Email string `json:"email,omitempty"`

	// Phone is the primary contact phone number.
	Phone string `json:"phone,omitempty"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}
