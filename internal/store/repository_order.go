package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/models"
)

var orderColumns = []string{"id", "customer_id", "number", "status", "total_cents", "currency", "created_at"}

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository] over the "orders" table.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the
// provided database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOrder persists a new order and returns it with the
// server-assigned CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on the per-tenant order number
//     → [ErrOrderNumberTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *orderRepository) CreateOrder(ctx context.Context, tenantID string, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("orders").
		Columns("id", "tenant_id", "customer_id", "number", "status", "total_cents", "currency").
		Values(order.ID, nullableTenant(tenantID), order.CustomerID, order.Number, order.Status, order.TotalCents, order.Currency).
		Suffix("RETURNING created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&order.CreatedAt); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Bool("retryable", r.db.Retryable(err)).Msg("error inserting order")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Order{}, ErrOrderNumberTaken
		default:
			return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return order, nil
}

// ListOrders returns a page of orders, tenant-scoped when tenantID is
// non-empty.
func (r *orderRepository) ListOrders(ctx context.Context, tenantID string, limit uint64) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	qb := sq.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)
	qb = scopeToTenant(qb, tenantID)

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Bool("retryable", r.db.Retryable(err)).Msg("error querying orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Number, &o.Status, &o.TotalCents, &o.Currency, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}
