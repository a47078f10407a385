package models

// CustomerListResponse is the envelope returned for customer listings.
type CustomerListResponse struct {
	// Customers is the page of customers visible to the request's
	// tenant scope.
	Customers []Customer `json:"customers"`

	// Length is the number of entries in Customers. Provided for
	// convenience so consumers can validate the response without
	// iterating the slice.
	Length int `json:"length"`
}

// OrderListResponse is the envelope returned for order listings.
type OrderListResponse struct {
	// Orders is the page of orders visible to the request's tenant
	// scope.
	Orders []Order `json:"orders"`

	// Length is the number of entries in Orders.
	Length int `json:"length"`
}

// ConfigResponse is the diagnostic view of the resolved runtime
// configuration. It deliberately omits the resolved API base URL and all
// override values: only decision sources are exposed.
type ConfigResponse struct {
	// Environment is the resolved deployment environment tag.
	Environment string `json:"environment"`

	// Tenant is the inferred tenant identifier, empty when unscoped.
	Tenant string `json:"tenant,omitempty"`

	// Features maps feature-flag names to their resolved values.
	Features map[string]bool `json:"features"`

	// Sources maps resolution keys to the precedence layer that decided
	// them (override, inference, build_default, fallback).
	Sources map[string]string `json:"sources"`
}
