package service

import (
	"strconv"

	"github.com/opendesk-labs/opendesk/internal/config"
	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/store"
)

// Services aggregates all business services.
type Services struct {
	CustomerService CustomerService
	OrderService    OrderService
}

// NewServices wires the business services to the repositories and the
// resolved runtime configuration.
func NewServices(repos *store.Repositories, cfg *config.EffectiveConfig, logger *logger.Logger) *Services {
	pageSize := parsePageSize(cfg.Tunable(config.KeyPageSize))

	return &Services{
		CustomerService: NewCustomerService(repos.CustomerRepository, pageSize, logger),
		OrderService:    NewOrderService(repos.OrderRepository, repos.CustomerRepository, pageSize, logger),
	}
}

const fallbackPageSize = 25

// parsePageSize parses the page_size tunable. Garbage or non-positive
// values silently fall back to the default, matching the resolver's
// parse-or-default policy.
func parsePageSize(raw string) uint64 {
	size, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || size == 0 {
		return fallbackPageSize
	}
	return size
}
