package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down.
	RunServer()

	// Run binds all listeners and serves until ctx is done. Bind failures are
	// returned before anything is served.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown()
}

// transport is one listener-backed server.
type transport interface {
	name() string
	listen() error
	closeListener()
	serve()
	shutdown()
}
