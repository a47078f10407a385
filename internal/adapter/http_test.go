package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opendesk-labs/opendesk/internal/config"
	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/tenant"
	"github.com/opendesk-labs/opendesk/internal/utils"
	"github.com/opendesk-labs/opendesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds an httpAPIClient pointed at the given test server,
// optionally scoped to a tenant.
func newTestClient(t *testing.T, serverURL, tenantID string) *httpAPIClient {
	t.Helper()
	cfg := &config.EffectiveConfig{
		APIBaseURL:  serverURL + "/api/v1",
		Environment: tenant.Development,
		Tenant:      tenantID,
	}

	c, err := NewHTTPAPIClient(cfg, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c.(*httpAPIClient)
}

// ── Tenant scoping header ───────────────────────────────────────────────────

func TestListCustomers_TenantHeaderSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/customers", r.URL.Path)
		assert.Equal(t, "acme", r.Header.Get(utils.TenantHeader))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CustomerListResponse{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "acme")
	_, err := c.ListCustomers(context.Background())

	require.NoError(t, err)
}

func TestListCustomers_NoTenantNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Values(utils.TenantHeader),
			"unscoped client must not send the tenant header at all")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CustomerListResponse{})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")
	_, err := c.ListCustomers(context.Background())

	require.NoError(t, err)
}

// ── ListCustomers ───────────────────────────────────────────────────────────

func TestListCustomers_Success(t *testing.T) {
	want := []models.Customer{{ID: "c-1", Name: "Acme GmbH"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CustomerListResponse{Customers: want, Length: 1})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "acme")
	got, err := c.ListCustomers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListCustomers_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "acme")
	_, err := c.ListCustomers(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── CreateCustomer ──────────────────────────────────────────────────────────

func TestCreateCustomer_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/customers", r.URL.Path)

		var received models.Customer
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		received.ID = "c-42"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "acme")
	got, err := c.CreateCustomer(context.Background(), models.Customer{Name: "Acme GmbH"})

	require.NoError(t, err)
	assert.Equal(t, "c-42", got.ID)
	assert.Equal(t, "Acme GmbH", got.Name)
}

func TestCreateCustomer_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("no customer name provided"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "acme")
	_, err := c.CreateCustomer(context.Background(), models.Customer{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── GetCustomer ─────────────────────────────────────────────────────────────

func TestGetCustomer_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("error getting customer"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "acme")
	_, err := c.GetCustomer(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── CreateOrder ─────────────────────────────────────────────────────────────

func TestCreateOrder_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("order number taken"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "acme")
	_, err := c.CreateOrder(context.Background(), models.Order{CustomerID: "c-1", Number: "SO-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── ServerVersion ───────────────────────────────────────────────────────────

func TestServerVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "")
	got, err := c.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

// ── ResolvedConfig ──────────────────────────────────────────────────────────

func TestResolvedConfig_Success(t *testing.T) {
	want := models.ConfigResponse{
		Environment: "production",
		Tenant:      "acme",
		Features:    map[string]bool{"feature_invoicing": true},
		Sources:     map[string]string{"environment": "inference"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/config/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, "acme")
	got, err := c.ResolvedConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url kept", raw: "https://acme-api.opendesk.app/api/v1", want: "https://acme-api.opendesk.app/api/v1"},
		{name: "trailing slash trimmed", raw: "http://localhost:8000/api/v1/", want: "http://localhost:8000/api/v1"},
		{name: "scheme added", raw: "localhost:8000", want: "http://localhost:8000"},
		{name: "empty rejected", raw: "", wantErr: true},
		{name: "whitespace rejected", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
