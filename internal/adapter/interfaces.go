// Package adapter provides the HTTP client used to talk to an opendesk
// backend resolved from the effective runtime configuration.
//
// The primary abstraction is [APIClient], which decouples callers (the
// deskctl CLI in particular) from the wire protocol. The HTTP/REST
// implementation ([NewHTTPAPIClient]) attaches the tenant scoping header
// to every request when, and only when, the resolved configuration
// carries a tenant.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/opendesk-labs/opendesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient defines transport-agnostic communication with an opendesk
// backend. Implementations are responsible for serialisation, tenant
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type APIClient interface {
	// ServerVersion fetches the backend's build version string.
	ServerVersion(ctx context.Context) (string, error)

	// ResolvedConfig fetches the backend's diagnostic view of its own
	// resolved runtime configuration (sources only, no values).
	ResolvedConfig(ctx context.Context) (models.ConfigResponse, error)

	// ListCustomers fetches the customers visible to the client's tenant
	// scope.
	ListCustomers(ctx context.Context) ([]models.Customer, error)

	// CreateCustomer creates a customer and returns the server-assigned
	// record.
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)

	// GetCustomer fetches a single customer by ID. Returns [ErrNotFound]
	// (wrapped) when the customer does not exist in the client's scope.
	GetCustomer(ctx context.Context, id string) (models.Customer, error)

	// ListOrders fetches the orders visible to the client's tenant scope.
	ListOrders(ctx context.Context) ([]models.Order, error)

	// CreateOrder creates an order and returns the server-assigned
	// record. Returns [ErrConflict] (wrapped) when the order number is
	// already taken within the tenant.
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
}
