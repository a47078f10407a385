package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	const want = "1.2.3"

	h := &Handler{version: want, logger: logger.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}

func TestGetServerVersion_ContentTypeNotJSON(t *testing.T) {
	h := &Handler{version: "1.0.0", logger: logger.Nop()}

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	// Handler writes plain text — Content-Type must NOT be application/json.
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHealthz_OK(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.healthz(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
