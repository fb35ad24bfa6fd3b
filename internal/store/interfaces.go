package store

import (
	"context"
	"time"

	"github.com/project/ticket-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EventRepository persists events.
type EventRepository interface {
	// Create stores event and returns it with the assigned id.
	Create(ctx context.Context, event models.Event) (models.Event, error)
	// FindByID returns [ErrEventNotFound] when id matches nothing.
	FindByID(ctx context.Context, id int64) (models.Event, error)
	// List returns one page of events ordered by start time and the total
	// number of events.
	List(ctx context.Context, page models.Page) ([]models.Event, int64, error)
}

// TicketRepository persists tickets and keeps the seat counter of their
// event consistent.
type TicketRepository interface {
	// Reserve decrements the available seats of the event by the number of
	// tickets and inserts them, atomically. [ErrNotEnoughSeats] is returned
	// when fewer seats are left.
	Reserve(ctx context.Context, reservation models.Reservation) ([]models.Ticket, error)
	// FindByNo returns [ErrTicketNotFound] when ticketNo matches nothing.
	FindByNo(ctx context.Context, ticketNo string) (models.Ticket, error)
	// ListByUser returns the tickets of userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Ticket, error)
	// Cancel marks a booked ticket cancelled and returns its seat to the
	// event, atomically.
	Cancel(ctx context.Context, ticket models.Ticket, cancelledAt time.Time) (models.Ticket, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
