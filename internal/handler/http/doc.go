// Package http implements the REST transport of the ticket service.
//
// Every endpoint is a [Controller] registered through manage, which verifies
// the bearer token, runs the controller, normalizes its result into a
// models.APIResponse envelope, maps errors onto the apperror catalogue and
// records the execution time. Tracing, access logging, CORS, compression and
// Prometheus exposition are plain chi middleware around the managed routes.
package http
