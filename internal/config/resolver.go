package config

import (
	"sort"

	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/tenant"
)

// Source records which layer of the precedence chain produced a resolved
// value. Diagnostic logging reports sources, never values.
type Source string

const (
	// SourceOverride — the value came from an explicit operator override.
	SourceOverride Source = "override"
	// SourceInference — the value came from hostname-based inference.
	SourceInference Source = "inference"
	// SourceBuildDefault — the value came from a compile-time default.
	SourceBuildDefault Source = "build_default"
	// SourceFallback — the value is the hardcoded last-resort default.
	SourceFallback Source = "fallback"
)

// EffectiveConfig is the single resolved configuration object consumed by
// the rest of the application. It is computed once at startup and treated
// as read-only for the process lifetime; consumers must not mutate the
// maps.
type EffectiveConfig struct {
	// APIBaseURL is the backend endpoint handed to the HTTP client.
	APIBaseURL string

	// Environment is the resolved deployment environment.
	Environment tenant.Environment

	// Tenant is the inferred tenant identifier; empty means no tenant
	// scoping.
	Tenant string

	// Features maps feature-flag names to their resolved boolean values.
	Features map[string]bool

	// Tunables maps the remaining string/numeric keys to their resolved
	// raw values, including any unknown override keys passed through
	// verbatim.
	Tunables map[string]string

	// Sources records, per key, which precedence layer decided the
	// value.
	Sources map[string]Source
}

// Feature reports the resolved value of a named feature flag. Unknown
// flags are disabled.
func (c *EffectiveConfig) Feature(name string) bool {
	return c.Features[name]
}

// Tunable returns the resolved raw value of a named tunable, or "" if
// the key was never resolved.
func (c *EffectiveConfig) Tunable(name string) string {
	return c.Tunables[name]
}

// Resolve merges the runtime context into the effective configuration,
// applying the fixed precedence per key: explicit override > tenant
// inference (for api_base_url and environment only) > build default >
// hardcoded fallback. The first present source short-circuits;
// inference counts as present only when the hostname matched an
// inference pattern.
//
// Resolve is pure and idempotent: the same context always yields the
// same configuration, and it is safe to call again at any point.
func Resolve(rc RuntimeContext) EffectiveConfig {
	inferred := tenant.Infer(rc.Hostname)

	cfg := EffectiveConfig{
		Tenant:   inferred.Tenant,
		Features: make(map[string]bool, len(defaultFeatures)),
		Tunables: make(map[string]string),
		Sources:  make(map[string]Source),
	}

	// A hostname that matched no inference pattern contributes nothing:
	// the fail-safe production triple must not shadow a compiled-in
	// build default.
	inferredURL := inferred.APIBaseURL
	if !inferred.Matched {
		inferredURL = ""
	}

	cfg.APIBaseURL, cfg.Sources[KeyAPIBaseURL] = resolveString(
		rc, KeyAPIBaseURL, inferredURL, defaultAPIBaseURL())

	cfg.Environment, cfg.Sources[KeyEnvironment] = resolveEnvironment(rc, inferred)

	for key, fallback := range defaultFeatures {
		cfg.Features[key], cfg.Sources[key] = resolveBool(rc, key, fallback)
	}

	cfg.Tunables[KeyPageSize], cfg.Sources[KeyPageSize] = resolveString(
		rc, KeyPageSize, "", defaultPageSize)

	// Unknown override keys pass through as tunables rather than being
	// rejected: an operator-supplied value must not stop resolution.
	for key, value := range rc.ExplicitOverrides {
		if _, known := cfg.Sources[key]; known || value == "" {
			continue
		}
		cfg.Tunables[key] = value
		cfg.Sources[key] = SourceOverride
	}

	return cfg
}

// defaultAPIBaseURL is the hardcoded last resort when neither override,
// inference, nor build default produced an endpoint: the production
// no-tenant backend.
func defaultAPIBaseURL() string {
	return tenant.Infer("").APIBaseURL
}

// resolveString applies the precedence chain for a plain string key.
// An empty value at a given layer means that layer is absent and the
// next one is consulted.
func resolveString(rc RuntimeContext, key, inferred, fallback string) (string, Source) {
	if v := rc.ExplicitOverrides[key]; v != "" {
		return v, SourceOverride
	}
	if inferred != "" {
		return inferred, SourceInference
	}
	if v := rc.BuildDefaults[key]; v != "" {
		return v, SourceBuildDefault
	}
	return fallback, SourceFallback
}

// resolveEnvironment applies the precedence chain for the environment
// enum. A value that does not parse to a valid environment tag is
// treated as absent at that layer rather than being guessed at: a
// garbage override falls through to inference and a garbage build
// default falls through to the production fallback. Inference only
// participates when the hostname matched a pattern; a no-signal
// fallthrough yields to the build default.
func resolveEnvironment(rc RuntimeContext, inferred tenant.Inference) (tenant.Environment, Source) {
	if v := rc.ExplicitOverrides[KeyEnvironment]; v != "" {
		if e, ok := parseEnvironment(v); ok {
			return e, SourceOverride
		}
	}
	if inferred.Matched {
		return inferred.Environment, SourceInference
	}
	if v := rc.BuildDefaults[KeyEnvironment]; v != "" {
		if e, ok := parseEnvironment(v); ok {
			return e, SourceBuildDefault
		}
	}
	return tenant.Production, SourceFallback
}

// resolveBool applies the precedence chain for a boolean key. Inference
// never produces booleans, so the chain is override > build default >
// fallback. Non-empty values are parsed with [parseBooleanOrDefault], so
// garbage input resolves to false instead of failing.
func resolveBool(rc RuntimeContext, key string, fallback bool) (bool, Source) {
	if v := rc.ExplicitOverrides[key]; v != "" {
		return parseBooleanOrDefault(v, false), SourceOverride
	}
	if v := rc.BuildDefaults[key]; v != "" {
		return parseBooleanOrDefault(v, false), SourceBuildDefault
	}
	return fallback, SourceFallback
}

// parseBooleanOrDefault parses s as a configuration boolean: "true" and
// "1" are true, any other non-empty value is false, and an empty string
// yields def. The silent-fallback behavior is deliberate and must stay
// visible here rather than being scattered through the resolver.
func parseBooleanOrDefault(s string, def bool) bool {
	switch s {
	case "":
		return def
	case "true", "1":
		return true
	default:
		return false
	}
}

// parseEnvironment maps a string to the closed environment enum.
func parseEnvironment(s string) (tenant.Environment, bool) {
	switch tenant.Environment(s) {
	case tenant.Development, tenant.UAT, tenant.Production:
		return tenant.Environment(s), true
	default:
		return "", false
	}
}

// LogResolution emits one diagnostic line per resolved key stating the
// decision source. It is an explicit startup call, never an import-time
// side effect, and it stays silent in production. Values are never
// logged: overrides and resolved URLs can reveal infrastructure
// topology.
func LogResolution(log *logger.Logger, cfg *EffectiveConfig) {
	if cfg.Environment == tenant.Production {
		return
	}

	keys := make([]string, 0, len(cfg.Sources))
	for key := range cfg.Sources {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		log.Debug().
			Str("key", key).
			Str("source", string(cfg.Sources[key])).
			Msg("config key resolved")
	}
}
