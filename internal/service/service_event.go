package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/project/ticket-service/internal/apperror"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/internal/store"
	"github.com/project/ticket-service/models"
)

type eventService struct {
	eventRepository store.EventRepository

	now    func() time.Time
	logger *logger.Logger
}

// NewEventService returns an EventService on top of eventRepository.
// Input is not validated here; wrap the result with NewEventValidationService.
func NewEventService(eventRepository store.EventRepository, logger *logger.Logger) EventService {
	return &eventService{
		eventRepository: eventRepository,
		now:             time.Now,
		logger:          logger,
	}
}

// CreateEvent stores a new event with all seats available.
//
// Returns apperror.EventAlreadyExists if an event with the same name already
// starts at req.StartsAt.
func (s *eventService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (models.Event, error) {
	log := s.logger.Ctx(ctx)

	event := models.Event{
		Name:       req.Name,
		Venue:      req.Venue,
		StartsAt:   req.StartsAt.UTC(),
		Capacity:   req.Capacity,
		Available:  req.Capacity,
		PriceCents: req.PriceCents,
		CreatedAt:  s.now().UTC(),
	}

	created, err := s.eventRepository.Create(ctx, event)
	if errors.Is(err, store.ErrEventAlreadyExists) {
		return models.Event{}, apperror.Wrap(err, apperror.EventAlreadyExists, event.Name, event.StartsAt.Format(time.RFC3339))
	}
	if err != nil {
		log.Err(err).Str("func", "eventService.CreateEvent").Str("name", event.Name).Msg("event creation ended with error")
		return models.Event{}, fmt.Errorf("%w: %w", ErrCreatingEvent, err)
	}

	log.Info().Int64("event_id", created.ID).Str("name", created.Name).Msg("event created")
	return created, nil
}

// GetEvent returns apperror.EventNotFound when eventID matches nothing.
func (s *eventService) GetEvent(ctx context.Context, eventID int64) (models.Event, error) {
	event, err := s.eventRepository.FindByID(ctx, eventID)
	if errors.Is(err, store.ErrEventNotFound) {
		return models.Event{}, apperror.Wrap(err, apperror.EventNotFound, eventID)
	}
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "eventService.GetEvent").Int64("event_id", eventID).Msg("event lookup ended with error")
		return models.Event{}, fmt.Errorf("%w: %w", ErrReadingEvents, err)
	}

	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, page models.Page) (models.PageResult[models.Event], error) {
	events, count, err := s.eventRepository.List(ctx, page)
	if err != nil {
		s.logger.Ctx(ctx).Err(err).Str("func", "eventService.ListEvents").Msg("event listing ended with error")
		return models.PageResult[models.Event]{}, fmt.Errorf("%w: %w", ErrReadingEvents, err)
	}

	if events == nil {
		events = []models.Event{}
	}

	return models.PageResult[models.Event]{
		Items: events,
		Page:  page.Page,
		Size:  page.Size,
		Count: int(count),
	}, nil
}
