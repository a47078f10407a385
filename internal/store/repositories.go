package store

import (
	"github.com/opendesk-labs/opendesk/internal/logger"
)

// Repositories aggregates all persistence repositories behind their
// interfaces.
type Repositories struct {
	CustomerRepository CustomerRepository
	OrderRepository    OrderRepository
}

// NewRepositories wires every repository to the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		CustomerRepository: NewCustomerRepository(db, logger),
		OrderRepository:    NewOrderRepository(db, logger),
	}
}
