package service

import (
	"context"

	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/store"
	"github.com/opendesk-labs/opendesk/internal/utils"
	"github.com/opendesk-labs/opendesk/models"
)

type customerService struct {
	customerRepository store.CustomerRepository
	uuidGen            *utils.UUIDGenerator
	pageSize           uint64

	logger *logger.Logger
}

// NewCustomerService constructs the customer business service.
func NewCustomerService(customerRepository store.CustomerRepository, pageSize uint64, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		uuidGen:            utils.NewUUIDGenerator(),
		pageSize:           pageSize,
		logger:             logger,
	}
}

// CreateCustomer validates and persists a new customer. The record is
// created under the tenant carried by ctx; with no tenant in scope the
// record is unscoped.
func (s *customerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	if customer.Name == "" {
		return models.Customer{}, ErrValidationNoCustomerName
	}

	customer.ID = s.uuidGen.Generate()
	tenantID, _ := utils.GetTenantFromContext(ctx)

	return s.customerRepository.CreateCustomer(ctx, tenantID, customer)
}

// ListCustomers returns one page of customers visible to the request's
// tenant scope.
func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	tenantID, _ := utils.GetTenantFromContext(ctx)

	return s.customerRepository.ListCustomers(ctx, tenantID, s.pageSize)
}

// GetCustomer returns a single customer within the tenant scope.
func (s *customerService) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	tenantID, _ := utils.GetTenantFromContext(ctx)

	return s.customerRepository.FindCustomerByID(ctx, tenantID, id)
}
