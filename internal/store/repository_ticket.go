// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/project/ticket-service/internal/logger"
	"github.com/project/ticket-service/models"
)

// ticketRepository is the SQL implementation of [TicketRepository] over the
// "tickets" and "events" tables.
type ticketRepository struct {
	*DB
	logger *logger.Logger
}

// NewTicketRepository constructs a [TicketRepository] backed by db.
func NewTicketRepository(db *DB, logger *logger.Logger) TicketRepository {
	logger.Debug().Msg("creating ticket repository")
	return &ticketRepository{
		DB:     db,
		logger: logger,
	}
}

// Reserve takes len(reservation.Tickets) seats from the event and inserts
// the tickets in one transaction. Retryable errors restart the whole
// transaction.
func (r *ticketRepository) Reserve(ctx context.Context, reservation models.Reservation) ([]models.Ticket, error) {
	if len(reservation.Tickets) == 0 {
		return nil, nil
	}

	err := r.withRetry(ctx, "reserve", func() error {
		return r.reserve(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	return reservation.Tickets, nil
}

func (r *ticketRepository) reserve(ctx context.Context, reservation models.Reservation) error {
	log := r.logger.Ctx(ctx)

	takeQuery, takeArgs, err := r.buildTakeSeatsQuery(reservation.EventID, len(reservation.Tickets))
	if err != nil {
		return err
	}
	insertQuery, insertArgs, err := r.buildInsertTicketsQuery(reservation.Tickets)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "ticketRepository.Reserve").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, takeQuery, takeArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "ticketRepository.Reserve").
			Int64("event_id", reservation.EventID).
			Msg("failed to take seats")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Info().
			Str("func", "ticketRepository.Reserve").
			Int64("event_id", reservation.EventID).
			Int("quantity", len(reservation.Tickets)).
			Msg("not enough seats left")
		return ErrNotEnoughSeats
	}

	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).
			Str("func", "ticketRepository.Reserve").
			Int64("event_id", reservation.EventID).
			Msg("failed to insert tickets")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "ticketRepository.Reserve").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "ticketRepository.Reserve").
		Int64("event_id", reservation.EventID).
		Str("user_id", reservation.UserID).
		Int("quantity", len(reservation.Tickets)).
		Msg("seats reserved")

	return nil
}

// FindByNo returns the ticket with the given ticket number.
func (r *ticketRepository) FindByNo(ctx context.Context, ticketNo string) (models.Ticket, error) {
	log := r.logger.Ctx(ctx)

	query, args, err := r.buildFindTicketQuery(ticketNo)
	if err != nil {
		return models.Ticket{}, err
	}

	ticket, err := scanTicket(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ticket{}, ErrTicketNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "ticketRepository.FindByNo").
			Str("ticket_no", ticketNo).
			Msg("failed to find ticket")
		return models.Ticket{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ticket, nil
}

// ListByUser returns every ticket of userID, newest first.
func (r *ticketRepository) ListByUser(ctx context.Context, userID string) ([]models.Ticket, error) {
	log := r.logger.Ctx(ctx)

	query, args, err := r.buildListTicketsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "ticketRepository.ListByUser").
			Str("user_id", userID).
			Msg("failed to list tickets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tickets := make([]models.Ticket, 0)
	for rows.Next() {
		ticket, scanErr := scanTicket(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "ticketRepository.ListByUser").Msg("failed to scan ticket")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		tickets = append(tickets, ticket)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tickets, nil
}

// Cancel marks ticket cancelled and gives its seat back in one transaction.
// [ErrTicketAlreadyCancelled] is returned when the ticket is not booked
// anymore.
func (r *ticketRepository) Cancel(ctx context.Context, ticket models.Ticket, cancelledAt time.Time) (models.Ticket, error) {
	err := r.withRetry(ctx, "cancel", func() error {
		return r.cancel(ctx, ticket, cancelledAt)
	})
	if err != nil {
		return models.Ticket{}, err
	}

	ticket.Status = models.TicketCancelled
	ticket.CancelledAt = &cancelledAt
	return ticket, nil
}

func (r *ticketRepository) cancel(ctx context.Context, ticket models.Ticket, cancelledAt time.Time) error {
	log := r.logger.Ctx(ctx)

	cancelQuery, cancelArgs, err := r.buildCancelTicketQuery(ticket.TicketNo, cancelledAt)
	if err != nil {
		return err
	}
	returnQuery, returnArgs, err := r.buildReturnSeatQuery(ticket.EventID)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "ticketRepository.Cancel").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, cancelQuery, cancelArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "ticketRepository.Cancel").
			Str("ticket_no", ticket.TicketNo).
			Msg("failed to cancel ticket")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTicketAlreadyCancelled
	}

	if _, err = tx.ExecContext(ctx, returnQuery, returnArgs...); err != nil {
		log.Err(err).
			Str("func", "ticketRepository.Cancel").
			Int64("event_id", ticket.EventID).
			Msg("failed to return seat")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "ticketRepository.Cancel").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func scanTicket(row rowScanner) (models.Ticket, error) {
	var (
		ticket      models.Ticket
		status      string
		cancelledAt sql.NullTime
	)
	err := row.Scan(
		&ticket.ID,
		&ticket.TicketNo,
		&ticket.EventID,
		&ticket.UserID,
		&ticket.HolderName,
		&ticket.HolderEmail,
		&status,
		&ticket.PriceCents,
		&ticket.PurchasedAt,
		&cancelledAt,
	)
	if err != nil {
		return models.Ticket{}, err
	}

	ticket.Status = models.TicketStatus(status)
	if cancelledAt.Valid {
		t := cancelledAt.Time
		ticket.CancelledAt = &t
	}
	return ticket, nil
}
