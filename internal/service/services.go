// Package service holds the business logic of the ticket service.
//
// Failures a client can act on are returned as *apperror.Error and rejected
// input as *validators.ViolationError; everything else is an internal error
// wrapped with one of the sentinels in errors.go.
package service

import (
	"github.com/project/ticket-service/internal/adapter"
	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/store"
	"github.com/project/ticket-service/internal/validators"
)

type Services struct {
	AuthService    AuthService
	EventService   EventService
	TicketService  TicketService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, users adapter.UserServiceAdapter, cfg *config.StructuredConfig, instanceID string, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, instanceID, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()

	eventService := NewEventValidationService(validator).Wrap(
		NewEventService(storages.EventRepository, logger),
	)
	ticketService := NewTicketValidationService(validator).Wrap(
		NewTicketService(storages.EventRepository, storages.TicketRepository, users, logger),
	)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		EventService:   eventService,
		TicketService:  ticketService,
		AppInfoService: appInfoService,
	}, nil
}
