package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/project/ticket-service/internal/adapter"
	"github.com/project/ticket-service/internal/apperror"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/store"
	"github.com/project/ticket-service/internal/utils"
	"github.com/project/ticket-service/models"
)

type idGenerator interface {
	Generate() string
}

// ticketService books and cancels seats.
//
// Holder details missing from a purchase request are looked up in the user
// service. The call forwards the caller's bearer token found in ctx.
type ticketService struct {
	eventRepository  store.EventRepository
	ticketRepository store.TicketRepository
	users            adapter.UserServiceAdapter

	ids    idGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewTicketService(
	eventRepository store.EventRepository,
	ticketRepository store.TicketRepository,
	users adapter.UserServiceAdapter,
	logger *logger.Logger,
) TicketService {
	return &ticketService{
		eventRepository:  eventRepository,
		ticketRepository: ticketRepository,
		users:            users,
		ids:              utils.NewUUIDGenerator(),
		now:              time.Now,
		logger:           logger,
	}
}

// Purchase books req.Quantity seats of an event for userID.
//
// Returns:
//   - apperror.EventNotFound if the event does not exist.
//   - apperror.EventAlreadyStarted if the event start time has passed.
//   - apperror.TicketsSoldOut if fewer than req.Quantity seats are left.
//   - apperror.UserNotFound / apperror.UserServiceUnavailable if the holder
//     details had to be fetched and the user service failed.
func (s *ticketService) Purchase(ctx context.Context, userID string, req models.PurchaseRequest) ([]models.Ticket, error) {
	log := s.logger.Ctx(ctx)

	if userID == "" {
		return nil, apperror.New(apperror.TokenMissing)
	}

	event, err := s.findEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if !event.StartsAt.After(now) {
		return nil, apperror.New(apperror.EventAlreadyStarted, event.ID)
	}
	if event.Available < req.Quantity {
		return nil, apperror.New(apperror.TicketsSoldOut, event.ID, req.Quantity)
	}

	holderName, holderEmail := req.HolderName, req.HolderEmail
	if holderName == "" || holderEmail == "" {
		profile, err := s.users.GetUserProfile(ctx, userID)
		if err != nil {
			log.Err(err).Str("func", "ticketService.Purchase").Str("user_id", userID).Msg("fetching buyer profile failed")
			return nil, err
		}
		if holderName == "" {
			holderName = profile.Name
		}
		if holderEmail == "" {
			holderEmail = profile.Email
		}
	}

	tickets := make([]models.Ticket, 0, req.Quantity)
	for range req.Quantity {
		tickets = append(tickets, models.Ticket{
			TicketNo:    s.ids.Generate(),
			EventID:     event.ID,
			UserID:      userID,
			HolderName:  holderName,
			HolderEmail: holderEmail,
			Status:      models.TicketBooked,
			PriceCents:  event.PriceCents,
			PurchasedAt: now,
		})
	}

	booked, err := s.ticketRepository.Reserve(ctx, models.Reservation{
		EventID: event.ID,
		UserID:  userID,
		Tickets: tickets,
	})
	if errors.Is(err, store.ErrNotEnoughSeats) {
		return nil, apperror.Wrap(err, apperror.TicketsSoldOut, event.ID, req.Quantity)
	}
	if err != nil {
		log.Err(err).Str("func", "ticketService.Purchase").Int64("event_id", event.ID).Msg("seat reservation ended with error")
		return nil, fmt.Errorf("%w: %w", ErrReservingSeats, err)
	}

	log.Info().Int64("event_id", event.ID).Str("user_id", userID).Int("quantity", len(booked)).Msg("tickets booked")
	return booked, nil
}

func (s *ticketService) ListTickets(ctx context.Context, userID string) ([]models.Ticket, error) {
	if userID == "" {
		return nil, apperror.New(apperror.TokenMissing)
	}

	tickets, err := s.ticketRepository.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "ticketService.ListTickets").Str("user_id", userID).Msg("ticket listing ended with error")
		return nil, fmt.Errorf("%w: %w", ErrReadingTickets, err)
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}

	return tickets, nil
}

// GetTicket returns apperror.TicketNotFound for an unknown number and
// apperror.TicketForbidden when the ticket belongs to someone else.
func (s *ticketService) GetTicket(ctx context.Context, userID, ticketNo string) (models.Ticket, error) {
	if userID == "" {
		return models.Ticket{}, apperror.New(apperror.TokenMissing)
	}

	return s.findOwnTicket(ctx, userID, ticketNo)
}

// Cancel releases the seat of a booked ticket.
//
// Only the owner may cancel, and only before the event starts. A ticket that
// is already cancelled yields apperror.TicketAlreadyCancelled.
func (s *ticketService) Cancel(ctx context.Context, userID, ticketNo string) (models.Ticket, error) {
	log := s.logger.Ctx(ctx)

	if userID == "" {
		return models.Ticket{}, apperror.New(apperror.TokenMissing)
	}

	ticket, err := s.findOwnTicket(ctx, userID, ticketNo)
	if err != nil {
		return models.Ticket{}, err
	}
	if ticket.Status == models.TicketCancelled {
		return models.Ticket{}, apperror.New(apperror.TicketAlreadyCancelled, ticketNo)
	}

	event, err := s.findEvent(ctx, ticket.EventID)
	if err != nil {
		return models.Ticket{}, err
	}

	now := s.now().UTC()
	if !event.StartsAt.After(now) {
		return models.Ticket{}, apperror.New(apperror.EventAlreadyStarted, event.ID)
	}

	cancelled, err := s.ticketRepository.Cancel(ctx, ticket, now)
	if errors.Is(err, store.ErrTicketAlreadyCancelled) {
		return models.Ticket{}, apperror.Wrap(err, apperror.TicketAlreadyCancelled, ticketNo)
	}
	if err != nil {
		log.Err(err).Str("func", "ticketService.Cancel").Str("ticket_no", ticketNo).Msg("ticket cancellation ended with error")
		return models.Ticket{}, fmt.Errorf("%w: %w", ErrCancellingTicket, err)
	}

	log.Info().Str("ticket_no", ticketNo).Int64("event_id", event.ID).Msg("ticket cancelled")
	return cancelled, nil
}

func (s *ticketService) findEvent(ctx context.Context, eventID int64) (models.Event, error) {
	event, err := s.eventRepository.FindByID(ctx, eventID)
	if errors.Is(err, store.ErrEventNotFound) {
		return models.Event{}, apperror.Wrap(err, apperror.EventNotFound, eventID)
	}
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "ticketService.findEvent").Int64("event_id", eventID).Msg("event lookup ended with error")
		return models.Event{}, fmt.Errorf("%w: %w", ErrReadingEvents, err)
	}

	return event, nil
}

func (s *ticketService) findOwnTicket(ctx context.Context, userID, ticketNo string) (models.Ticket, error) {
	ticket, err := s.ticketRepository.FindByNo(ctx, ticketNo)
	if errors.Is(err, store.ErrTicketNotFound) {
		return models.Ticket{}, apperror.Wrap(err, apperror.TicketNotFound, ticketNo)
	}
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "ticketService.findOwnTicket").Str("ticket_no", ticketNo).Msg("ticket lookup ended with error")
		return models.Ticket{}, fmt.Errorf("%w: %w", ErrReadingTickets, err)
	}

	if ticket.UserID != userID {
		return models.Ticket{}, apperror.New(apperror.TicketForbidden, ticketNo)
	}

	return ticket, nil
}
