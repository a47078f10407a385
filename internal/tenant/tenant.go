package tenant

import (
	"strings"
)

// Environment identifies which backend deployment a request targets.
type Environment string

const (
	// Development marks local or dev-suffixed deployments.
	Development Environment = "development"
	// UAT marks user-acceptance-testing deployments.
	UAT Environment = "uat"
	// Production is the fail-safe default for any hostname that matches
	// no other pattern.
	Production Environment = "production"
)

// String returns the environment tag as a plain string.
func (e Environment) String() string {
	return string(e)
}

const (
	devSuffix = "-dev"
	uatSuffix = "-uat"

	apiPath = "/api/v1"

	// LocalAPIBaseURL is the backend address used for any loopback host.
	LocalAPIBaseURL = "http://localhost:8000" + apiPath
)

// Default no-tenant endpoints per environment. Used when the hostname
// carries no tenant label (root domain, www, bare environment hosts).
var defaultAPIBaseURLs = map[Environment]string{
	Development: LocalAPIBaseURL,
	UAT:         "https://api-uat.opendesk.app" + apiPath,
	Production:  "https://api.opendesk.app" + apiPath,
}

// reserved labels never name a tenant even in the leftmost position.
var reservedLabels = map[string]struct{}{
	"www": {},
	"dev": {},
	"uat": {},
	"api": {},
}

// Inference is the derived tenant/environment/endpoint triple for a
// hostname. It is a value type and is never persisted.
type Inference struct {
	// Tenant is the tenant identifier extracted from the hostname.
	// Empty means no tenant scoping (single-tenant or root domain).
	Tenant string

	// Environment is the classified deployment environment.
	// Always one of the three declared constants.
	Environment Environment

	// APIBaseURL is the fully qualified backend endpoint for this
	// tenant and environment, without a trailing slash.
	APIBaseURL string

	// Matched reports whether the hostname actually matched an
	// inference pattern: loopback, an environment marker, or a tenant
	// label. False means the triple is the production fail-safe for a
	// hostname that carried no signal (empty, malformed, bare root
	// domain), and consumers with their own defaults may prefer those
	// over it.
	Matched bool
}

// Infer maps a raw hostname to an [Inference]. It is pure and total:
// any input, including empty or malformed strings, resolves to a valid
// triple. Hostnames that match no known pattern fall through to
// production with no tenant, never to a guess; such results carry
// Matched == false so callers can tell a classified production host
// from a no-signal fallthrough.
//
// A trailing ":port" is stripped before matching. Environment
// classification runs on the whole host so that a tenant label carrying
// an environment suffix (e.g. "acme-uat") classifies the environment
// before the suffix is stripped from the tenant id.
//
// Hosts with more than one label in front of the root domain are not
// specially handled: the leftmost label is taken as the tenant
// candidate and everything after it as the root domain. Nested
// subdomain layouts are undefined territory and should be raised,
// not relied on.
func Infer(hostname string) Inference {
	host := stripPort(hostname)

	if isLoopback(host) {
		return Inference{
			Tenant:      "",
			Environment: Development,
			APIBaseURL:  LocalAPIBaseURL,
			Matched:     true,
		}
	}

	environment := classify(host)
	tenant := extractTenant(host, environment)

	return Inference{
		Tenant:      tenant,
		Environment: environment,
		APIBaseURL:  buildAPIBaseURL(host, tenant, environment),
		Matched:     tenant != "" || environment != Production,
	}
}

// stripPort removes a trailing ":port" suffix. The port value itself is
// irrelevant for inference and is not validated.
func stripPort(hostname string) string {
	if i := strings.IndexByte(hostname, ':'); i >= 0 {
		return hostname[:i]
	}
	return hostname
}

func isLoopback(host string) bool {
	return host == "localhost" ||
		host == "0.0.0.0" ||
		strings.HasPrefix(host, "127.") ||
		strings.HasPrefix(host, "localhost.")
}

// classify picks the environment for a host, first match wins:
// dev markers, then uat markers, then production. Matching is done on
// the whole host rather than the post-tenant-stripped remainder.
func classify(host string) Environment {
	labels := strings.Split(host, ".")
	first := labels[0]

	switch {
	case first == "dev" || strings.HasSuffix(first, devSuffix):
		return Development
	case first == "uat" || strings.HasSuffix(first, uatSuffix):
		return UAT
	default:
		return Production
	}
}

// extractTenant pulls the tenant id out of the leftmost host label.
// Returns "" for root domains (two labels or fewer) and for reserved
// labels. An environment suffix matching the classified environment is
// stripped from the label.
func extractTenant(host string, environment Environment) string {
	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		return ""
	}

	candidate := labels[0]
	if candidate == "" {
		return ""
	}
	if _, reserved := reservedLabels[candidate]; reserved {
		return ""
	}

	switch environment {
	case Development:
		candidate = strings.TrimSuffix(candidate, devSuffix)
	case UAT:
		candidate = strings.TrimSuffix(candidate, uatSuffix)
	}

	return candidate
}

// buildAPIBaseURL constructs the backend endpoint for the inferred
// tenant and environment. Tenant hosts map to a per-tenant API host on
// the same root domain ("acme.example.com" -> "acme-api.example.com");
// hosts without a tenant map to the fixed per-environment default.
func buildAPIBaseURL(host, tenant string, environment Environment) string {
	if tenant == "" {
		return defaultAPIBaseURLs[environment]
	}

	scheme := "https"
	envInfix := ""
	switch environment {
	case Development:
		scheme = "http"
		envInfix = devSuffix
	case UAT:
		envInfix = uatSuffix
	}

	labels := strings.Split(host, ".")
	rootDomain := strings.Join(labels[1:], ".")

	return scheme + "://" + tenant + envInfix + "-api." + rootDomain + apiPath
}
