package store

import (
	"context"

	"github.com/opendesk-labs/opendesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CustomerRepository is the persistence boundary for customers. Every
// method takes the tenant identifier explicitly: a non-empty tenant adds
// a tenant predicate to the underlying statement, an empty tenant runs
// the statement unscoped. The tenant value originates from the request
// header and is never derived inside the store.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, tenantID string, customer models.Customer) (models.Customer, error)
	ListCustomers(ctx context.Context, tenantID string, limit uint64) ([]models.Customer, error)
	FindCustomerByID(ctx context.Context, tenantID string, id string) (models.Customer, error)
}

// OrderRepository is the persistence boundary for sales orders, scoped
// the same way as [CustomerRepository].
type OrderRepository interface {
	CreateOrder(ctx context.Context, tenantID string, order models.Order) (models.Order, error)
	ListOrders(ctx context.Context, tenantID string, limit uint64) ([]models.Order, error)
}
