// Package config provides configuration loading, merging, and resolution
// facilities for the application.
//
// Two layers live here:
//
//  1. The structured process configuration (listen address, database DSN,
//     timeouts), assembled from environment variables and command-line
//     flags in priority order with later sources overriding earlier
//     non-zero fields.
//  2. The runtime resolution layer: a [RuntimeContext] captured once at
//     startup (hostname, operator overrides, build-time defaults) and
//     resolved by [Resolve] into the frozen [EffectiveConfig] consumed by
//     the HTTP client and feature-flag checks. Precedence is total and
//     fixed: explicit override > tenant inference > build default.
//
// The main entry points are [GetStructuredConfig] for the process
// configuration and [GetEffectiveConfig] for the resolved runtime view.
package config
