package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler builds a Handler with a nop logger (no stdout output).
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func executeWithTenant(h *Handler, tenantID string) (*httptest.ResponseRecorder, string, bool) {
	var gotTenant string
	var gotFound bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTenant, gotFound = utils.GetTenantFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTenant(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if tenantID != "" {
		req.Header.Set(utils.TenantHeader, tenantID)
	}

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr, gotTenant, gotFound
}

func TestWithTenant_HeaderPresent(t *testing.T) {
	h := newTestHandler()

	rr, gotTenant, gotFound := executeWithTenant(h, "acme")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, gotFound, "tenant from header must be visible in the request context")
	assert.Equal(t, "acme", gotTenant)
}

func TestWithTenant_HeaderAbsent(t *testing.T) {
	h := newTestHandler()

	rr, gotTenant, gotFound := executeWithTenant(h, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, gotFound, "absent header means the request is unscoped")
	assert.Empty(t, gotTenant)
}

func TestWithTenant_EmptyHeaderValue(t *testing.T) {
	h := newTestHandler()

	var gotFound bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotFound = utils.GetTenantFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTenant(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(utils.TenantHeader, "")

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, gotFound, "an empty header value behaves the same as an absent header")
}

func TestWithTenant_AlwaysCallsNext(t *testing.T) {
	h := newTestHandler()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusTeapot)
	})

	middleware := h.withTenant(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
