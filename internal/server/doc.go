// Package server runs the inspection transports of the discovery resolver.
//
// It binds the configured HTTP and gRPC listeners, serves until the context
// is cancelled or a termination signal arrives, and shuts every transport
// down gracefully.
package server
