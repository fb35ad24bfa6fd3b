package server

import "context"

// Server defines the lifecycle of a transport server.
type Server interface {
	// RunServer serves requests and blocks until the server stops. A server
	// stopped through Shutdown returns nil.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests until ctx is done.
	Shutdown(ctx context.Context) error
}
