package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/models"
)

var customerColumns = []string{"id", "name", "email", "phone", "created_at"}

// customerRepository is the PostgreSQL-backed implementation of
// [CustomerRepository] over the "customers" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCustomer persists a new customer record and returns the fully
// populated [models.Customer] with the server-assigned CreatedAt.
// A non-empty tenantID is stored on the row; an unscoped insert stores
// NULL.
func (r *customerRepository) CreateCustomer(ctx context.Context, tenantID string, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("customers").
		Columns("id", "tenant_id", "name", "email", "phone").
		Values(customer.ID, nullableTenant(tenantID), customer.Name, customer.Email, customer.Phone).
		Suffix("RETURNING created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&customer.CreatedAt); err != nil {
		log.Err(err).Str("func", "*customerRepository.CreateCustomer").Bool("retryable", r.db.Retryable(err)).Msg("error inserting customer")
		return models.Customer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return customer, nil
}

// ListCustomers returns a page of customers. A non-empty tenantID
// restricts the result to that tenant's rows; an empty tenantID runs the
// query unscoped.
func (r *customerRepository) ListCustomers(ctx context.Context, tenantID string, limit uint64) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	qb := sq.Select(customerColumns...).
		From("customers").
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
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Bool("retryable", r.db.Retryable(err)).Msg("error querying customers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return customers, nil
}

// FindCustomerByID returns the customer with the given id within the
// tenant scope. A customer owned by another tenant yields
// [ErrCustomerNotFound], exactly like a missing one.
func (r *customerRepository) FindCustomerByID(ctx context.Context, tenantID string, id string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	qb := sq.Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)
	qb = scopeToTenant(qb, tenantID)

	query, args, err := qb.ToSql()
	if err != nil {
		return models.Customer{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Customer
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}
		log.Err(err).Str("func", "*customerRepository.FindCustomerByID").Bool("retryable", r.db.Retryable(err)).Msg("error querying customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return c, nil
}

// scopeToTenant applies the tenant predicate when a tenant is in scope.
// Empty tenantID leaves the statement unscoped: absence of the tenant
// header means "no scoping", never a widened query over all tenants'
// private views.
func scopeToTenant(qb sq.SelectBuilder, tenantID string) sq.SelectBuilder {
	if tenantID == "" {
		return qb
	}
	return qb.Where(sq.Eq{"tenant_id": tenantID})
}

func nullableTenant(tenantID string) any {
	if tenantID == "" {
		return nil
	}
	return tenantID
}
