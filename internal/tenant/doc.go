// Package tenant implements hostname-based tenant and environment
// inference. A single deployment artifact is shared by every tenant and
// environment; which backend a running instance talks to, and which
// tenant its data is scoped to, is derived from the hostname it was
// reached on.
//
// The package is deliberately pure: [Infer] performs no I/O, reads no
// ambient state, and never fails. Misclassifying here routes requests
// to the wrong backend or leaks data across tenants, so every
// unmatched input falls back to the most restrictive result
// (production, no tenant) instead of guessing.
package tenant
