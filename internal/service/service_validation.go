package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/project/ticket-service/internal/validators"
	"github.com/project/ticket-service/models"
)

// EventValidationService rejects malformed event requests before they reach
// the wrapped EventService. Rejections are *validators.ViolationError.
type EventValidationService struct {
	inner     EventService
	validator validators.Validator
	now       func() time.Time
}

func NewEventValidationService(validator validators.Validator) EventServiceWrapper {
	return &EventValidationService{
		validator: validator,
		now:       time.Now,
	}
}

func (v *EventValidationService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (models.Event, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Event{}, fmt.Errorf("error during event validation before saving: %w", err)
	}
	if !req.StartsAt.After(v.now()) {
		return models.Event{}, validators.NewViolationError(models.Violation{
			Field:   "starts_at",
			Message: "must be in the future",
		})
	}

	return v.inner.CreateEvent(ctx, req)
}

func (v *EventValidationService) GetEvent(ctx context.Context, eventID int64) (models.Event, error) {
	if eventID < 1 {
		return models.Event{}, validators.NewViolationError(models.Violation{
			Field:   "eventId",
			Message: "must be a positive number",
		})
	}

	return v.inner.GetEvent(ctx, eventID)
}

func (v *EventValidationService) ListEvents(ctx context.Context, page models.Page) (models.PageResult[models.Event], error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return models.PageResult[models.Event]{}, fmt.Errorf("error during page validation: %w", err)
	}

	return v.inner.ListEvents(ctx, page)
}

func (v *EventValidationService) Wrap(wrapped EventService) EventService {
	v.inner = wrapped
	return v
}

// TicketValidationService rejects malformed ticket requests before they
// reach the wrapped TicketService.
type TicketValidationService struct {
	inner     TicketService
	validator validators.Validator
}

func NewTicketValidationService(validator validators.Validator) TicketServiceWrapper {
	return &TicketValidationService{validator: validator}
}

func (v *TicketValidationService) Purchase(ctx context.Context, userID string, req models.PurchaseRequest) ([]models.Ticket, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error during purchase validation: %w", err)
	}

	return v.inner.Purchase(ctx, userID, req)
}

func (v *TicketValidationService) ListTickets(ctx context.Context, userID string) ([]models.Ticket, error) {
	return v.inner.ListTickets(ctx, userID)
}

func (v *TicketValidationService) GetTicket(ctx context.Context, userID, ticketNo string) (models.Ticket, error) {
	if err := validateTicketNo(ticketNo); err != nil {
		return models.Ticket{}, err
	}

	return v.inner.GetTicket(ctx, userID, ticketNo)
}

func (v *TicketValidationService) Cancel(ctx context.Context, userID, ticketNo string) (models.Ticket, error) {
	if err := validateTicketNo(ticketNo); err != nil {
		return models.Ticket{}, err
	}

	return v.inner.Cancel(ctx, userID, ticketNo)
}

func (v *TicketValidationService) Wrap(wrapped TicketService) TicketService {
	v.inner = wrapped
	return v
}

func validateTicketNo(ticketNo string) error {
	if err := uuid.Validate(ticketNo); err != nil {
		return validators.NewViolationError(models.Violation{
			Field:   "ticketNo",
			Message: "must be a UUID",
		})
	}
	return nil
}
