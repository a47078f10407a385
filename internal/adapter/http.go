package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/opendesk-labs/opendesk/internal/config"
	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/utils"
	"github.com/opendesk-labs/opendesk/models"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	// rootURL is the scheme://host portion of the base URL, used for
	// endpoints mounted outside the versioned API prefix.
	rootURL string
	tenant  string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient]
// from the resolved runtime configuration. It normalises and validates
// cfg.APIBaseURL, configures the underlying HTTP client with the resolved
// base URL and request timeout, and remembers cfg.Tenant for header
// scoping.
//
// Returns an error if cfg.APIBaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPAPIClient(cfg *config.EffectiveConfig, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	rootURL := parsed.Scheme + "://" + parsed.Host

	return &httpAPIClient{client: client, rootURL: rootURL, tenant: cfg.Tenant, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ServerVersion implements [APIClient]. It GETs /api/version/ relative to
// the configured base URL's host and returns the plain-text body.
func (h *httpAPIClient) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.scopedRequest(ctx).Get(h.rootURL + "/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// ResolvedConfig implements [APIClient]. It GETs /config/ and decodes the
// diagnostic configuration view.
func (h *httpAPIClient) ResolvedConfig(ctx context.Context) (models.ConfigResponse, error) {
	var response models.ConfigResponse

	resp, err := h.scopedRequest(ctx).
		SetResult(&response).
		Get("/config/")
	if err != nil {
		return models.ConfigResponse{}, fmt.Errorf("resolved config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConfigResponse{}, err
	}

	return response, nil
}

// ListCustomers implements [APIClient].
func (h *httpAPIClient) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	resp, err := h.scopedRequest(ctx).Get("/customers")
	if err != nil {
		return nil, fmt.Errorf("list customers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var response models.CustomerListResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, fmt.Errorf("decode customers response: %w", err)
	}

	return response.Customers, nil
}

// CreateCustomer implements [APIClient].
func (h *httpAPIClient) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	var created models.Customer

	resp, err := h.scopedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(customer).
		SetResult(&created).
		Post("/customers")
	if err != nil {
		return models.Customer{}, fmt.Errorf("create customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Customer{}, err
	}

	return created, nil
}

// GetCustomer implements [APIClient].
func (h *httpAPIClient) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	var customer models.Customer

	resp, err := h.scopedRequest(ctx).
		SetResult(&customer).
		Get("/customers/" + url.PathEscape(id))
	if err != nil {
		return models.Customer{}, fmt.Errorf("get customer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Customer{}, err
	}

	return customer, nil
}

// ListOrders implements [APIClient].
func (h *httpAPIClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	resp, err := h.scopedRequest(ctx).Get("/orders")
	if err != nil {
		return nil, fmt.Errorf("list orders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var response models.OrderListResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, fmt.Errorf("decode orders response: %w", err)
	}

	return response.Orders, nil
}

// CreateOrder implements [APIClient].
func (h *httpAPIClient) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	var created models.Order

	resp, err := h.scopedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(order).
		SetResult(&created).
		Post("/orders")
	if err != nil {
		return models.Order{}, fmt.Errorf("create order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Order{}, err
	}

	return created, nil
}

// scopedRequest builds a request carrying the tenant scoping header. The
// header is attached only when the resolved configuration inferred a
// tenant: unscoped clients send no header at all.
func (h *httpAPIClient) scopedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.tenant != "" {
		req.SetHeader(utils.TenantHeader, h.tenant)
	}
	return req
}
