package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/project/ticket-service/internal/config"
	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages opens a migrated database in a temp dir.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, config.DB{DSN: "sqlite://" + filepath.Join(t.TempDir(), "tickets.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	return NewStorages(db, logger.Nop())
}

func bookTickets(eventID int64, userID string, n int) models.Reservation {
	reservation := models.Reservation{EventID: eventID, UserID: userID}
	for range n {
		reservation.Tickets = append(reservation.Tickets, models.Ticket{
			TicketNo:    uuid.NewString(),
			EventID:     eventID,
			UserID:      userID,
			HolderName:  "Jane",
			HolderEmail: "jane@example.com",
			Status:      models.TicketBooked,
			PriceCents:  700,
			PurchasedAt: time.Now().UTC(),
		})
	}
	return reservation
}

func TestSQLite_EventAndTicketLifecycle(t *testing.T) {
	ctx := context.Background()
	storages := newSQLiteStorages(t)

	startsAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	event, err := storages.EventRepository.Create(ctx, models.Event{
		Name:       "Concert",
		Venue:      "Hall",
		StartsAt:   startsAt,
		Capacity:   3,
		Available:  3,
		PriceCents: 700,
		CreatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotZero(t, event.ID)

	_, err = storages.EventRepository.Create(ctx, models.Event{
		Name: "Concert", Venue: "Other", StartsAt: startsAt, Capacity: 1, Available: 1, CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ErrEventAlreadyExists)

	// two seats for u-1, then one too many for u-2
	booked, err := storages.TicketRepository.Reserve(ctx, bookTickets(event.ID, "u-1", 2))
	require.NoError(t, err)
	require.Len(t, booked, 2)

	_, err = storages.TicketRepository.Reserve(ctx, bookTickets(event.ID, "u-2", 2))
	assert.ErrorIs(t, err, ErrNotEnoughSeats)

	found, err := storages.EventRepository.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Available)

	tickets, err := storages.TicketRepository.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, tickets, 2)

	ticket, err := storages.TicketRepository.FindByNo(ctx, booked[0].TicketNo)
	require.NoError(t, err)
	assert.Equal(t, models.TicketBooked, ticket.Status)

	cancelled, err := storages.TicketRepository.Cancel(ctx, ticket, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, models.TicketCancelled, cancelled.Status)

	_, err = storages.TicketRepository.Cancel(ctx, ticket, time.Now().UTC())
	assert.ErrorIs(t, err, ErrTicketAlreadyCancelled)

	found, err = storages.EventRepository.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.Available)

	events, total, err := storages.EventRepository.List(ctx, models.DefaultPage)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, events, 1)
	assert.True(t, startsAt.Equal(events[0].StartsAt))

	_, err = storages.EventRepository.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrEventNotFound)
	_, err = storages.TicketRepository.FindByNo(ctx, "missing")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
