package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/opendesk-labs/opendesk/internal/utils"
	"github.com/rs/zerolog"
)

// withTraceID tags every request with a correlation id: an inbound
// X-Trace-ID value is reused, otherwise a fresh UUID is minted. The id
// is echoed on the response and stamped onto a request-scoped child
// logger that withTenant and the handlers enrich further down the
// chain.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		requestLogger := h.logger.GetChildLogger()
		requestLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(requestLogger.WithContext(r.Context())))
	})
}
