package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer_Loopback(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
	}{
		{name: "localhost with port", hostname: "localhost:3000"},
		{name: "localhost bare", hostname: "localhost"},
		{name: "loopback IP", hostname: "127.0.0.1:8080"},
		{name: "loopback IP bare", hostname: "127.0.0.1"},
		{name: "all interfaces", hostname: "0.0.0.0:3000"},
		{name: "localhost subdomain form", hostname: "localhost.localdomain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(tt.hostname)

			assert.Empty(t, got.Tenant)
			assert.Equal(t, Development, got.Environment)
			assert.Equal(t, "http://localhost:8000/api/v1", got.APIBaseURL)
		})
	}
}

func TestInfer_RootDomain(t *testing.T) {
	got := Infer("example.com")

	assert.Empty(t, got.Tenant)
	assert.Equal(t, Production, got.Environment)
	assert.Equal(t, "https://api.opendesk.app/api/v1", got.APIBaseURL)
}

func TestInfer_ProductionTenant(t *testing.T) {
	got := Infer("acme.example.com")

	assert.Equal(t, "acme", got.Tenant)
	assert.Equal(t, Production, got.Environment)
	assert.Equal(t, "https://acme-api.example.com/api/v1", got.APIBaseURL)
}

func TestInfer_UATTenant(t *testing.T) {
	got := Infer("acme-uat.example.com")

	assert.Equal(t, "acme", got.Tenant)
	assert.Equal(t, UAT, got.Environment)
	assert.Equal(t, "https://acme-uat-api.example.com/api/v1", got.APIBaseURL)
}

func TestInfer_DevTenant(t *testing.T) {
	got := Infer("acme-dev.example.com")

	assert.Equal(t, "acme", got.Tenant)
	assert.Equal(t, Development, got.Environment)
	assert.Equal(t, "http://acme-dev-api.example.com/api/v1", got.APIBaseURL)
}

func TestInfer_ReservedLabels(t *testing.T) {
	tests := []struct {
		name        string
		hostname    string
		environment Environment
	}{
		{name: "www", hostname: "www.example.com", environment: Production},
		{name: "bare dev", hostname: "dev.example.com", environment: Development},
		{name: "bare uat", hostname: "uat.example.com", environment: UAT},
		{name: "api host", hostname: "api.example.com", environment: Production},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(tt.hostname)

			assert.Empty(t, got.Tenant)
			assert.Equal(t, tt.environment, got.Environment)
			assert.Equal(t, defaultAPIBaseURLs[tt.environment], got.APIBaseURL)
		})
	}
}

func TestInfer_MalformedInput(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
	}{
		{name: "empty string", hostname: ""},
		{name: "no dots", hostname: "not-a-hostname"},
		{name: "only port", hostname: ":8080"},
		{name: "only dots", hostname: "..."},
		{name: "garbage", hostname: "!!%%@@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(tt.hostname)

			// Unmatched patterns always degrade to the production
			// no-tenant default, never to a partial guess.
			assert.Empty(t, got.Tenant)
			assert.Equal(t, Production, got.Environment)
			assert.Equal(t, defaultAPIBaseURLs[Production], got.APIBaseURL)
			assert.False(t, got.Matched)
		})
	}
}

func TestInfer_MatchedDistinguishesSignalFromFallthrough(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		matched  bool
	}{
		{name: "loopback", hostname: "localhost:3000", matched: true},
		{name: "tenant label", hostname: "acme.example.com", matched: true},
		{name: "environment marker only", hostname: "uat.example.com", matched: true},
		{name: "tenant with dev suffix", hostname: "acme-dev.example.com", matched: true},
		{name: "empty hostname", hostname: "", matched: false},
		{name: "bare root domain", hostname: "example.com", matched: false},
		{name: "www host", hostname: "www.example.com", matched: false},
		{name: "garbage", hostname: "!!%%@@", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matched, Infer(tt.hostname).Matched)
		})
	}
}

func TestInfer_PortStripping(t *testing.T) {
	withPort := Infer("acme.example.com:8443")
	withoutPort := Infer("acme.example.com")

	assert.Equal(t, withoutPort, withPort)
}

func TestInfer_EnvironmentClassifiedOnWholeHost(t *testing.T) {
	// The tenant label itself carries the environment marker; the
	// classifier must see it before the suffix is stripped.
	got := Infer("billing-uat.example.com")

	assert.Equal(t, UAT, got.Environment)
	assert.Equal(t, "billing", got.Tenant)
}

func TestInfer_NestedSubdomainTakesLeftmostLabel(t *testing.T) {
	// Known simplification: nested subdomains are not interpreted,
	// the leftmost label wins.
	got := Infer("a.b.tenant.example.com")

	assert.Equal(t, "a", got.Tenant)
	assert.Equal(t, Production, got.Environment)
	assert.Equal(t, "https://a-api.b.tenant.example.com/api/v1", got.APIBaseURL)
}

func TestInfer_Idempotent(t *testing.T) {
	hosts := []string{
		"localhost:3000",
		"acme.example.com",
		"acme-uat.example.com",
		"www.example.com",
		"",
	}

	for _, h := range hosts {
		assert.Equal(t, Infer(h), Infer(h), "Infer(%q) must be referentially transparent", h)
	}
}

func TestInfer_NoTrailingSlash(t *testing.T) {
	hosts := []string{"localhost", "acme.example.com", "acme-dev.example.com", "example.com"}

	for _, h := range hosts {
		got := Infer(h)
		assert.NotEmpty(t, got.APIBaseURL)
		assert.NotRegexp(t, `/$`, got.APIBaseURL)
	}
}
