package http

import (
	"net/http"

	"github.com/opendesk-labs/opendesk/internal/utils"
	"github.com/rs/zerolog"
)

// withTenant reads the tenant header and, when present, stores its value
// in the request context for the service and store layers. This header
// is the sole mechanism scoping queries to a tenant: its absence means
// the request runs unscoped, never that it spans all tenants.
//
// The value is trusted as-is. Authenticating the caller's right to the
// tenant is the job of the session layer in front of this service.
func (h *Handler) withTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(utils.TenantHeader)
		if tenantID == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.WithTenant(r.Context(), tenantID)

		l := zerolog.Ctx(ctx)
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("tenant", tenantID)
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
