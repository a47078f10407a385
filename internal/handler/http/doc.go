// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as tenant scoping, request tracing, and
// access logging are handled in this package before requests are delegated
// to the service layer.
//
// Tenant scoping is header-driven: the middleware trusts the X-Tenant-ID
// header and places its value in the request context. A request without the
// header runs unscoped; it is never widened to "all tenants".
package http
