// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, UUID generation,
// and other common operations.
package utils

import (
	"context"
)

// TenantHeader is the request header carrying the tenant identifier.
// The backend trusts this header to scope queries; its absence means
// "no tenant scoping", never "all tenants".
const TenantHeader = "X-Tenant-ID"

// TraceIDHeader is the request header carrying the correlation id.
// Inbound values are reused so a trace survives hops through upstream
// proxies; requests arriving without one get a freshly minted UUID
// from the trace middleware.
const TraceIDHeader = "X-Trace-ID"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TenantCtxKey is the key used to store the tenant identifier in the
// context. Used together with GetTenantFromContext for type-safe
// retrieval of the tenant id from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.TenantCtxKey, "acme")
var TenantCtxKey = contextKey("tenant")

// GetTenantFromContext retrieves the tenant identifier from the context.
//
// Returns the tenant id and an ok flag:
//   - ok == true  — a non-empty tenant id is present in the context
//   - ok == false — the request carries no tenant scoping
//
// Example usage:
//
//	tenantID, ok := utils.GetTenantFromContext(ctx)
//	if !ok {
//	    // unscoped request
//	}
func GetTenantFromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(TenantCtxKey).(string)
	if !ok || tenantID == "" {
		return "", false
	}
	return tenantID, true
}

// WithTenant returns a child context carrying the given tenant id.
// An empty id returns ctx unchanged so that "no tenant" stays
// unrepresented rather than stored as an empty value.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	if tenantID == "" {
		return ctx
	}
	return context.WithValue(ctx, TenantCtxKey, tenantID)
}
