package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/models"
)

// eventRepository is the SQL implementation of [EventRepository] over the
// "events" table.
type eventRepository struct {
	*DB
	logger *logger.Logger
}

// NewEventRepository constructs an [EventRepository] backed by db.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts event. Available is expected to be set by the caller.
//
// Error handling:
//   - unique violation on (name, starts_at) → [ErrEventAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *eventRepository) Create(ctx context.Context, event models.Event) (models.Event, error) {
	log := r.logger.Ctx(ctx)

	query, args, err := r.buildCreateEventQuery(event)
	if err != nil {
		log.Err(err).Str("func", "eventRepository.Create").Msg("failed to create query")
		return models.Event{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&event.ID); err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "eventRepository.Create").
				Str("name", event.Name).
				Time("starts_at", event.StartsAt).
				Msg("event already exists")
			return models.Event{}, ErrEventAlreadyExists
		}
		log.Err(err).Str("func", "eventRepository.Create").Msg("failed to insert event")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "eventRepository.Create").
		Int64("event_id", event.ID).
		Msg("event created")

	return event, nil
}

// FindByID returns the event with the given id.
func (r *eventRepository) FindByID(ctx context.Context, id int64) (models.Event, error) {
	log := r.logger.Ctx(ctx)

	query, args, err := r.buildFindEventQuery(id)
	if err != nil {
		log.Err(err).Str("func", "eventRepository.FindByID").Msg("failed to create query")
		return models.Event{}, err
	}

	event, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, ErrEventNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.FindByID").
			Int64("event_id", id).
			Msg("failed to find event")
		return models.Event{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return event, nil
}

// List returns one page of events and the total number of stored events.
func (r *eventRepository) List(ctx context.Context, page models.Page) ([]models.Event, int64, error) {
	log := r.logger.Ctx(ctx)

	countQuery, countArgs, err := r.buildCountEventsQuery()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err = r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "eventRepository.List").Msg("failed to count events")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := r.buildListEventsQuery(page)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.List").
			Int("page", page.Page).
			Int("size", page.Size).
			Msg("failed to list events")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0, page.Size)
	for rows.Next() {
		event, scanErr := scanEvent(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "eventRepository.List").Msg("failed to scan event")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Venue,
		&event.StartsAt,
		&event.Capacity,
		&event.Available,
		&event.PriceCents,
		&event.CreatedAt,
	)
	return event, err
}
