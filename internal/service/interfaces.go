package service

import (
	"context"

	"github.com/project/ticket-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// DecodeBearerToken parses an "Authorization" header value and validates
	// the token it carries.
	DecodeBearerToken(ctx context.Context, authorizationHeader string) (models.Token, error)
	CreateToken(ctx context.Context, userID string) (models.Token, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, req models.CreateEventRequest) (models.Event, error)
	GetEvent(ctx context.Context, eventID int64) (models.Event, error)
	ListEvents(ctx context.Context, page models.Page) (models.PageResult[models.Event], error)
}

type TicketService interface {
	Purchase(ctx context.Context, userID string, req models.PurchaseRequest) ([]models.Ticket, error)
	ListTickets(ctx context.Context, userID string) ([]models.Ticket, error)
	GetTicket(ctx context.Context, userID, ticketNo string) (models.Ticket, error)
	Cancel(ctx context.Context, userID, ticketNo string) (models.Ticket, error)
}

type AppInfoService interface {
	Health(ctx context.Context) models.HealthResult
}
