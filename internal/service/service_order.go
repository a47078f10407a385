package service

import (
	"context"
	"errors"

	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/store"
	"github.com/opendesk-labs/opendesk/internal/utils"
	"github.com/opendesk-labs/opendesk/models"
)

type orderService struct {
	orderRepository    store.OrderRepository
	customerRepository store.CustomerRepository
	uuidGen            *utils.UUIDGenerator
	pageSize           uint64

	logger *logger.Logger
}

// NewOrderService constructs the order business service.
func NewOrderService(orderRepository store.OrderRepository, customerRepository store.CustomerRepository, pageSize uint64, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository:    orderRepository,
		customerRepository: customerRepository,
		uuidGen:            utils.NewUUIDGenerator(),
		pageSize:           pageSize,
		logger:             logger,
	}
}

// CreateOrder validates and persists a new sales order. The referenced
// customer must be visible within the same tenant scope; an order can
// never point at another tenant's customer.
func (s *orderService) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if err := validateOrder(order); err != nil {
		return models.Order{}, err
	}

	tenantID, _ := utils.GetTenantFromContext(ctx)

	if _, err := s.customerRepository.FindCustomerByID(ctx, tenantID, order.CustomerID); err != nil {
		if errors.Is(err, store.ErrCustomerNotFound) {
			return models.Order{}, ErrUnknownCustomer
		}
		return models.Order{}, err
	}

	order.ID = s.uuidGen.Generate()
	if order.Status == "" {
		order.Status = models.OrderStatusDraft
	}
	if order.Currency == "" {
		order.Currency = "EUR"
	}

	return s.orderRepository.CreateOrder(ctx, tenantID, order)
}

// ListOrders returns one page of orders visible to the request's tenant
// scope.
func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	tenantID, _ := utils.GetTenantFromContext(ctx)

	return s.orderRepository.ListOrders(ctx, tenantID, s.pageSize)
}

func validateOrder(order models.Order) error {
	if order.CustomerID == "" {
		return ErrValidationNoCustomerID
	}
	if order.Number == "" {
		return ErrValidationNoOrderNumber
	}

	switch order.Status {
	case "", models.OrderStatusDraft, models.OrderStatusConfirmed,
		models.OrderStatusInvoiced, models.OrderStatusCancelled:
		return nil
	default:
		return ErrValidationBadOrderStatus
	}
}
