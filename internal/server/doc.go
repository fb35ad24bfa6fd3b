// Package server runs the transport servers of the ticket service.
//
// It starts the HTTP server and, when configured, the gRPC health server,
// and stops all of them gracefully once the run context is cancelled or one
// of them fails.
package server
