package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCustomerNotFound is returned when a query targets a customer that
	// does not exist within the request's tenant scope. A customer owned by
	// another tenant is indistinguishable from a missing one.
	ErrCustomerNotFound = errors.New("customer was not found")

	// ErrOrderNotFound is returned when a query targets an order that does
	// not exist within the request's tenant scope.
	ErrOrderNotFound = errors.New("order was not found")

	// ErrOrderNumberTaken is returned when an INSERT fails because the order
	// number already exists for the tenant.
	ErrOrderNumberTaken = errors.New("order number already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan result rows")
)
