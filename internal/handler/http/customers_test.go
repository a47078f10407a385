package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/service"
	"github.com/opendesk-labs/opendesk/internal/store"
	"github.com/opendesk-labs/opendesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Mock: CustomerService ----

type mockCustomerSvc struct {
	customers []models.Customer
	err       error
}

func (m *mockCustomerSvc) CreateCustomer(_ context.Context, customer models.Customer) (models.Customer, error) {
	if m.err != nil {
		return models.Customer{}, m.err
	}
	customer.ID = "generated-id"
	return customer, nil
}

func (m *mockCustomerSvc) ListCustomers(_ context.Context) ([]models.Customer, error) {
	return m.customers, m.err
}

func (m *mockCustomerSvc) GetCustomer(_ context.Context, id string) (models.Customer, error) {
	if m.err != nil {
		return models.Customer{}, m.err
	}
	for _, c := range m.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, store.ErrCustomerNotFound
}

// ---- Mock: OrderService ----

type mockOrderSvc struct {
	orders []models.Order
	err    error
}

func (m *mockOrderSvc) CreateOrder(_ context.Context, order models.Order) (models.Order, error) {
	if m.err != nil {
		return models.Order{}, m.err
	}
	order.ID = "generated-id"
	return order, nil
}

func (m *mockOrderSvc) ListOrders(_ context.Context) ([]models.Order, error) {
	return m.orders, m.err
}

// ---- Helper ----

func newTestRouter(t *testing.T, customerSvc service.CustomerService, orderSvc service.OrderService) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			CustomerService: customerSvc,
			OrderService:    orderSvc,
		},
	}
	return h.Init()
}

// ---- Tests ----

func TestListCustomers_OK(t *testing.T) {
	customers := []models.Customer{
		{ID: "c-1", Name: "Acme GmbH"},
		{ID: "c-2", Name: "Globex Ltd"},
	}
	router := newTestRouter(t, &mockCustomerSvc{customers: customers}, &mockOrderSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response models.CustomerListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Length)
	assert.Equal(t, customers, response.Customers)
}

func TestListCustomers_ServiceError(t *testing.T) {
	router := newTestRouter(t, &mockCustomerSvc{err: store.ErrExecutingQuery}, &mockOrderSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestCreateCustomer_OK(t *testing.T) {
	router := newTestRouter(t, &mockCustomerSvc{}, &mockOrderSvc{})

	body, err := json.Marshal(models.Customer{Name: "Acme GmbH", Email: "billing@acme.example"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.Customer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "generated-id", created.ID)
	assert.Equal(t, "Acme GmbH", created.Name)
}

func TestCreateCustomer_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, &mockCustomerSvc{}, &mockOrderSvc{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateCustomer_ValidationError(t *testing.T) {
	router := newTestRouter(t, &mockCustomerSvc{err: service.ErrValidationNoCustomerName}, &mockOrderSvc{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetCustomer_OK(t *testing.T) {
	customers := []models.Customer{{ID: "c-1", Name: "Acme GmbH"}}
	router := newTestRouter(t, &mockCustomerSvc{customers: customers}, &mockOrderSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/c-1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Customer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Acme GmbH", got.Name)
}

func TestGetCustomer_NotFound(t *testing.T) {
	router := newTestRouter(t, &mockCustomerSvc{}, &mockOrderSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/missing", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetCustomer_UnmappedErrorIs500(t *testing.T) {
	router := newTestRouter(t, &mockCustomerSvc{err: errors.New("boom")}, &mockOrderSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/c-1", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
