// Package http implements the read-only inspection API of the discovery
// resolver.
//
// It exposes the resolved (redacted) discovery options, the expiry of the
// registry access token and the build information. Request tracing, access
// logging and response compression are handled by middleware before the
// request reaches the service layer.
package http
