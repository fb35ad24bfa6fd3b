package grpc

import (
	"context"

	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler. It serves the standard
// grpc.health.v1 service for the ticket service.
type Handler struct {
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health server starts in the
// NOT_SERVING state until [Handler.Register] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// ServerOptions returns the interceptors every RPC goes through.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.manageUnary),
	}
}

// Register attaches the health service to s and marks both the server as a
// whole ("") and the ticket service name as SERVING.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if name := h.serviceName(); name != "" {
		h.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
}

// Shutdown flips every status to NOT_SERVING so that load balancers drain
// the instance before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) serviceName() string {
	if h.services == nil || h.services.AppInfoService == nil {
		return ""
	}
	return h.services.AppInfoService.Health(context.Background()).Service
}
