package config

import (
	"encoding/json"
	"os"
)

// Resolution keys shared by overrides, build defaults, and the resolver.
const (
	KeyAPIBaseURL  = "api_base_url"
	KeyEnvironment = "environment"

	KeyFeatureInvoicing = "feature_invoicing"
	KeyFeatureReports   = "feature_reports"
	KeyFeatureExports   = "feature_exports"

	KeyPageSize = "page_size"
)

// Build-time defaults injected via -ldflags:
//
//	-X github.com/opendesk-labs/opendesk/internal/config.buildAPIBaseURL=...
//	-X github.com/opendesk-labs/opendesk/internal/config.buildEnvironment=...
var (
	buildAPIBaseURL  string
	buildEnvironment string
)

// defaultFeatures are the feature-flag values baked into the artifact.
// They sit below overrides and build defaults in the precedence order.
var defaultFeatures = map[string]bool{
	KeyFeatureInvoicing: true,
	KeyFeatureReports:   true,
	KeyFeatureExports:   false,
}

const defaultPageSize = "25"

// RuntimeContext is the full set of inputs to runtime resolution,
// captured once per process and never mutated afterwards. Both override
// and default maps are keyed by the Key* constants above.
type RuntimeContext struct {
	// Hostname is the raw hostname from the execution environment.
	Hostname string

	// ExplicitOverrides are operator-injected key/value pairs, present
	// only when the deployment supplies them. An empty map is valid and
	// means "no overrides".
	ExplicitOverrides map[string]string

	// BuildDefaults are values baked in at compile time. They act as the
	// last-resort fallback before the hardcoded defaults.
	BuildDefaults map[string]string
}

// NewRuntimeContext captures the resolution inputs from the loaded
// structured configuration: the hostname, the overrides file (if any),
// and the build-time defaults.
//
// An absent or unreadable overrides file is not an error; resolution
// must never block startup, so the overrides degrade to an empty set.
func NewRuntimeContext(runtime Runtime) RuntimeContext {
	return RuntimeContext{
		Hostname:          runtime.Hostname,
		ExplicitOverrides: loadOverrides(runtime.OverridesFile),
		BuildDefaults:     BuildDefaults(),
	}
}

// BuildDefaults assembles the compile-time default map from the ldflags
// variables and the baked-in feature flags. Unset ldflags variables are
// omitted so the merge step treats them as absent.
func BuildDefaults() map[string]string {
	defaults := make(map[string]string, len(defaultFeatures)+3)

	if buildAPIBaseURL != "" {
		defaults[KeyAPIBaseURL] = buildAPIBaseURL
	}
	if buildEnvironment != "" {
		defaults[KeyEnvironment] = buildEnvironment
	}
	for key, enabled := range defaultFeatures {
		defaults[key] = boolString(enabled)
	}
	defaults[KeyPageSize] = defaultPageSize

	return defaults
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// loadOverrides reads the operator overrides payload from path. Flat
// string values are kept verbatim; any other value shape, a missing
// file, or malformed JSON yields an empty set. Failures here are
// deliberate no-ops: a broken overrides mount must never stop the
// application from starting with inferred values.
func loadOverrides(path string) map[string]string {
	if path == "" {
		return map[string]string{}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return map[string]string{}
	}

	overrides := map[string]string{}
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return map[string]string{}
	}

	return overrides
}
