package service

import (
	"context"

	"github.com/opendesk-labs/opendesk/models"
)

// CustomerService covers customer lifecycle operations. The tenant scope
// is taken from the request context; services never receive a tenant
// argument directly.
type CustomerService interface {
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
}

// OrderService covers sales-order operations, tenant-scoped the same way
// as [CustomerService].
type OrderService interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}
