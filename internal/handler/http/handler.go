package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/service"
	"github.com/project/ticket-service/internal/utils"
)

type idGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	requestTimeout     time.Duration
	corsAllowedOrigins []string

	// registry is served on /metrics.
	registry *prometheus.Registry

	// controllerDuration observes the execution time of every managed
	// controller, labelled by controller name and outcome.
	controllerDuration *prometheus.HistogramVec

	// errorIDs generates the identifiers of unexpected failures reported to
	// clients.
	errorIDs idGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		requestTimeout:     cfg.RequestTimeout,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		registry:           registry,
		controllerDuration: newControllerDuration(registry),
		errorIDs:           utils.NewUUIDGenerator(),
		logger:             logger,
	}
}
